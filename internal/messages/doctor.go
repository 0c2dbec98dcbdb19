package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Explain why each standard stream is or is not a terminal"

	DoctorHeader = "Checking standard streams..."

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %-7s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorTerminal            = "attached to a terminal"
	DoctorRedirected          = "redirected, not a terminal"
	DoctorRedirectedRecommend = "Run without redirecting this stream to get interactive output."
	DoctorNoHandle            = "no usable handle"
	DoctorNoHandleRecommend   = "The stream is closed or missing; check how the parent process launched this one."
	DoctorCheckFailed         = "check failed"
	DoctorDetailFmt           = "%s (%s)"

	DoctorSuccessSummary = "Every selected stream was inspected successfully."
	DoctorFailureSummary = "Some streams could not be inspected."
	DoctorFailureError   = "doctor found stream failures"
)
