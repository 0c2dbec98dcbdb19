// Package doctor explains the terminal status of the standard streams.
package doctor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/stdtty"
	"github.com/conn-castle/stdtty/internal/messages"
)

// Status is the outcome of a single check.
type Status int

const (
	// StatusOK means the stream is attached to a terminal.
	StatusOK Status = iota
	// StatusWarn means the stream was inspected and is redirected.
	StatusWarn
	// StatusFail means the stream could not be inspected.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is a single doctor finding.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckFunc inspects one stream; stdtty.Check is the production implementation.
type CheckFunc func(stdtty.Stream) error

// CheckStreams runs check for each stream, or for all three when none are given.
func CheckStreams(check CheckFunc, streams ...stdtty.Stream) []Result {
	if len(streams) == 0 {
		streams = stdtty.Streams()
	}
	results := make([]Result, 0, len(streams))
	for _, s := range streams {
		results = append(results, checkStream(check, s))
	}
	return results
}

func checkStream(check CheckFunc, s stdtty.Stream) Result {
	r := Result{CheckName: s.String()}
	err := check(s)
	switch {
	case err == nil:
		r.Status = StatusOK
		r.Message = messages.DoctorTerminal
	case errors.Is(err, stdtty.ErrNotTerminal):
		r.Status = StatusWarn
		r.Message = withDetail(messages.DoctorRedirected, detail(s, err, stdtty.ErrNotTerminal))
		r.Recommendation = messages.DoctorRedirectedRecommend
	case errors.Is(err, stdtty.ErrNoHandle):
		r.Status = StatusFail
		r.Message = withDetail(messages.DoctorNoHandle, detail(s, err, stdtty.ErrNoHandle))
		r.Recommendation = messages.DoctorNoHandleRecommend
	default:
		r.Status = StatusFail
		r.Message = withDetail(messages.DoctorCheckFailed, detail(s, err, nil))
	}
	return r
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// detail strips the stream name and sentinel text from err, leaving the native cause.
func detail(s stdtty.Stream, err error, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), s.String()+": ")
	if sentinel != nil {
		msg = strings.TrimPrefix(msg, sentinel.Error())
		msg = strings.TrimPrefix(msg, ": ")
	}
	return msg
}

func withDetail(message string, detail string) string {
	if detail == "" {
		return message
	}
	return fmt.Sprintf(messages.DoctorDetailFmt, message, detail)
}
