package core

// AppStatus is the observed state of an application package on the device
type AppStatus int

const (
	AppStopped    AppStatus = iota // No live process
	AppBackground                  // Process alive, not the resumed activity
	AppForeground                  // Owns the resumed activity
)

// String returns the string representation of AppStatus
func (s AppStatus) String() string {
	switch s {
	case AppStopped:
		return "stopped"
	case AppBackground:
		return "background"
	case AppForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

// IsRunning returns true if the app has a live process
func (s AppStatus) IsRunning() bool {
	return s == AppForeground || s == AppBackground
}

// ErrorCategory classifies the type of error for better debugging and reporting
type ErrorCategory int

const (
	ErrCategoryNone       ErrorCategory = iota // No error
	ErrCategoryTransport                       // Command channel could not talk to the device
	ErrCategoryCapture                         // Dump output had no recognizable XML
	ErrCategoryParse                           // Snapshot was not well-formed XML
	ErrCategoryRemote                          // Remote runtime raised a structured fault
	ErrCategoryInput                           // Remote tool rejected a gesture, key or text
	ErrCategoryValidation                      // Construction or argument contract violated
	ErrCategoryAssertion                       // Element not found
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryTransport:
		return "transport"
	case ErrCategoryCapture:
		return "capture"
	case ErrCategoryParse:
		return "parse"
	case ErrCategoryRemote:
		return "remote"
	case ErrCategoryInput:
		return "input"
	case ErrCategoryValidation:
		return "validation"
	case ErrCategoryAssertion:
		return "assertion"
	default:
		return "unknown"
	}
}
