package message

import "errors"

// ErrInvalidPayload is returned when a payload contradicts the shape its
// derived predicates (has_controller, has_array) imply it should have —
// e.g. a domain-nibble index on an opcode that never carries one.
var ErrInvalidPayload = errors.New("ramses: invalid payload")
