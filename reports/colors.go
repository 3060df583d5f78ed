package reports

const (
	ColorReset   = "\x1b[0m"
	ColorKeyword = "\x1b[35m"
	ColorString  = "\x1b[32m"
	ColorNumber  = "\x1b[36m"
	ColorField   = "\x1b[33m"
	ColorError   = "\x1b[31;1m"
	ColorDim     = "\x1b[2m"
)
