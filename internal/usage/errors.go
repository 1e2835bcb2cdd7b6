package usage

import (
	"fmt"
	"strings"
)

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("lu: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("lu: missing required argument '%s'", arg),
	}
}

// UnknownCommand is returned when the command path does not resolve.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("lu: '%s' is not a lu command. See 'lu --help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// InvalidConfigKey is returned for keys that are not part of the config registry.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("lu: invalid config key '%s'", key),
	}
}

// InvalidValue is returned when an argument or flag value cannot be used.
func InvalidValue(name, value, hint string) *Error {
	msg := fmt.Sprintf("lu: invalid %s '%s'", name, value)
	if hint != "" {
		msg += " (" + hint + ")"
	}
	return &Error{
		Kind:    ErrInvalidValue,
		Message: msg,
	}
}

// NotFound is returned when a lookup by identity finds nothing.
func NotFound(what, id string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("lu: %s '%s' not found", what, id),
	}
}

// OutOfStock is returned when a product cannot be added or checked out.
func OutOfStock(code string) *Error {
	return &Error{
		Kind:    ErrOutOfStock,
		Message: fmt.Sprintf("lu: product '%s' is out of stock", code),
	}
}

// EmptyCart is returned by checkout when there is nothing to order.
func EmptyCart() *Error {
	return &Error{
		Kind:    ErrEmptyCart,
		Message: "lu: the cart is empty",
	}
}
