package main

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/conn-castle/stdtty"
	"github.com/conn-castle/stdtty/internal/messages"
)

// checkStream inspects the process's own standard streams; tests replace it.
var checkStream = stdtty.Check

// streamStatus is the TOML form of a report; unselected streams are omitted.
type streamStatus struct {
	Stdin  *bool `toml:"stdin,omitempty"`
	Stdout *bool `toml:"stdout,omitempty"`
	Stderr *bool `toml:"stderr,omitempty"`
}

type streamResult struct {
	stream   stdtty.Stream
	terminal bool
}

func newRootCmd() *cobra.Command {
	var (
		streamNames []string
		format      string
		quiet       bool
	)
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			streams, err := parseStreams(streamNames)
			if err != nil {
				return err
			}
			if !quiet && format != messages.FormatText && format != messages.FormatTOML {
				return fmt.Errorf(messages.FormatUnsupportedFmt, format)
			}
			results := inspect(streams)
			if quiet {
				for _, r := range results {
					if !r.terminal {
						return &SilentExitError{Code: 1}
					}
				}
				return nil
			}
			if format == messages.FormatTOML {
				return writeTOML(cmd.OutOrStdout(), results)
			}
			writeText(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.PersistentFlags().StringSliceVarP(&streamNames, "stream", "s", nil, messages.RootFlagStream)
	cmd.Flags().StringVarP(&format, "format", "f", messages.FormatText, messages.RootFlagFormat)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, messages.RootFlagQuiet)

	cmd.AddCommand(newDoctorCmd(&streamNames))
	cmd.AddCommand(newInteractiveCmd())
	return cmd
}

// parseStreams resolves --stream values, defaulting to every stream. Duplicates are dropped.
func parseStreams(names []string) ([]stdtty.Stream, error) {
	if len(names) == 0 {
		return stdtty.Streams(), nil
	}
	seen := make(map[stdtty.Stream]bool, len(names))
	streams := make([]stdtty.Stream, 0, len(names))
	for _, name := range names {
		s, err := stdtty.ParseStream(name)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		streams = append(streams, s)
	}
	return streams, nil
}

func inspect(streams []stdtty.Stream) []streamResult {
	results := make([]streamResult, 0, len(streams))
	for _, s := range streams {
		results = append(results, streamResult{stream: s, terminal: checkStream(s) == nil})
	}
	return results
}

func writeText(out io.Writer, results []streamResult) {
	for _, r := range results {
		_, _ = fmt.Fprintf(out, messages.ReportLineFmt, r.stream, r.terminal)
	}
}

func writeTOML(out io.Writer, results []streamResult) error {
	var status streamStatus
	for _, r := range results {
		terminal := r.terminal
		switch r.stream {
		case stdtty.Stdin:
			status.Stdin = &terminal
		case stdtty.Stdout:
			status.Stdout = &terminal
		case stdtty.Stderr:
			status.Stderr = &terminal
		}
	}
	data, err := toml.Marshal(status)
	if err != nil {
		return fmt.Errorf(messages.EncodeReportFmt, err)
	}
	_, err = out.Write(data)
	return err
}
