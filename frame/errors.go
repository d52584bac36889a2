package frame

import "errors"

// ErrInvalidPacket is returned when a wire line does not match the
// fixed-field RAMSES-II grammar (bad verb, seqn, opcode, length or hex
// payload).
var ErrInvalidPacket = errors.New("ramses: invalid packet")
