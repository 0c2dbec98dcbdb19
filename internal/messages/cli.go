package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "stdtty"
	RootShort = "Report whether stdin, stdout and stderr are attached to a terminal"
	RootLong  = "stdtty inspects its own standard streams and reports which of them are attached to an\ninteractive terminal rather than a file, pipe or other redirection."

	RootFlagStream = "Stream to inspect (stdin, stdout or stderr); repeat to select several"
	RootFlagFormat = "Output format: text or toml"
	RootFlagQuiet  = "Print nothing; exit 0 only when every selected stream is a terminal"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FormatText           = "text"
	FormatTOML           = "toml"
	FormatUnsupportedFmt = "unsupported format %q (want text or toml)"
	EncodeReportFmt      = "encode report: %w"

	// ReportLineFmt renders one stream in text output.
	ReportLineFmt = "%s: %t\n"

	// InteractiveUse is the interactive command name.
	InteractiveUse   = "interactive"
	InteractiveShort = "Exit 0 when both stdin and stdout are terminals, 1 otherwise"
)
