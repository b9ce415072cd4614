package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	PublishError    = 5
	PartialSuccess  = 6
	NoMatch         = 7
	InvalidDate     = 8
)
