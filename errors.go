// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "errors"

// Error kinds surfaced by the decoder. Call sites wrap these with
// fmt.Errorf("...: %w", ...) to add context; callers match with
// errors.Is.
var (
	// ErrTruncated reports that the input ended in the middle of a
	// record or token.
	ErrTruncated = errors.New("dxbc: truncated input")

	// ErrBadMagic reports a chunk tag mismatch where a specific tag
	// was required.
	ErrBadMagic = errors.New("dxbc: bad chunk tag")

	// ErrUnknownOpcode reports an out-of-range opcode or operand type.
	ErrUnknownOpcode = errors.New("dxbc: unknown opcode")

	// ErrUnknownExtendedOperand reports an extended operand token of
	// an undefined type.
	ErrUnknownExtendedOperand = errors.New("dxbc: unknown extended operand type")

	// ErrUnknownIndexRepr reports an undefined operand index
	// representation code.
	ErrUnknownIndexRepr = errors.New("dxbc: unknown operand index representation")

	// ErrInvariant reports a malformed stream: an instruction that
	// consumed a different number of tokens than its length header
	// declared, too many operands, or a field combination the format
	// does not allow.
	ErrInvariant = errors.New("dxbc: token stream invariant violated")

	// ErrBindPointNotFound reports a constant buffer whose name has no
	// entry in the resource binding table.
	ErrBindPointNotFound = errors.New("dxbc: constant buffer bind point not found")
)
