package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrInvalidValue
	ErrNotFound
	ErrOutOfStock
	ErrEmptyCart
)

// Exit codes:
//
//	Exit 1: Environment/state errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Not found
//	  - Out of stock
//	  - Empty cart
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidConfigKey: 1,
	ErrInvalidValue:     2,
	ErrNotFound:         1,
	ErrOutOfStock:       1,
	ErrEmptyCart:        1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is matches another *Error of the same kind, so errors.Is works with sentinel-like values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
