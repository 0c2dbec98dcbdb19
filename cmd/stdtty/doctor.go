package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/stdtty/internal/doctor"
	"github.com/conn-castle/stdtty/internal/messages"
	"github.com/conn-castle/stdtty/internal/terminal"
)

var colorEnabled = func() bool {
	return terminal.ColorEnabled(color.NoColor)
}

func newDoctorCmd(streamNames *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			streams, err := parseStreams(*streamNames)
			if err != nil {
				return err
			}
			p := newPalette(colorEnabled())

			_, _ = fmt.Fprintln(out, messages.DoctorHeader)
			results := doctor.CheckStreams(doctor.CheckFunc(checkStream), streams...)
			for _, r := range results {
				printResult(out, p, r)
			}

			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, p.fail.Sprint(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, p.ok.Sprint(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// palette holds the status colors; disabled colors print plain text.
type palette struct {
	ok   *color.Color
	warn *color.Color
	fail *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.ok, p.warn, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func printResult(out io.Writer, p palette, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = p.ok.Sprint(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = p.warn.Sprint(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = p.fail.Sprint(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
