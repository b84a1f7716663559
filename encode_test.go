// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"encoding/binary"
	"math"
)

// Test-side builders that synthesize token streams and chunks, plus an
// operand encoder symmetric to readOperand for round-trip checks.

// tokenBytes lays out words as a little-endian byte stream.
func tokenBytes(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// versionToken packs a shader version token.
func versionToken(major, minor uint8, typ ProgramType) uint32 {
	return uint32(minor&0xf) | uint32(major&0xf)<<4 | uint32(typ)<<16
}

// opcodeToken packs an opcode token with the given length.
func opcodeToken(op Opcode, length int) uint32 {
	return uint32(op) | uint32(length)<<opcodeTokenLenShift
}

// opcodeTokenCtrl also packs a per-opcode field at bit 11.
func opcodeTokenCtrl(op Opcode, length int, ctrl uint32) uint32 {
	return opcodeToken(op, length) | ctrl<<11
}

// shaderCode builds a shader-code token stream: version token, length
// token covering the whole stream, then the body.
func shaderCode(version uint32, body ...uint32) []byte {
	words := append([]uint32{version, uint32(len(body) + 2)}, body...)
	return tokenBytes(words...)
}

// chunk wraps a payload in a chunk header.
func chunk(tag string, payload []byte) []byte {
	b := make([]byte, 8+len(payload))
	copy(b, tag)
	binary.LittleEndian.PutUint32(b[4:], uint32(len(payload)))
	copy(b[8:], payload)
	return b
}

// operandToken packs an operand token.
func operandToken(typ OperandType, comps uint32, mode SelectionMode, sel uint32, reprs ...uint32) uint32 {
	tok := comps | uint32(mode)<<2 | sel<<4 | uint32(typ)<<12 | uint32(len(reprs))<<20
	for i, r := range reprs {
		tok |= r << (22 + 3*i)
	}
	return tok
}

// regOperand is the common two-token form: 4-component, full write
// mask, one immediate register index.
func regOperand(typ OperandType, reg uint32) []uint32 {
	return []uint32{operandToken(typ, operandComps4, SelectMask, 0xf, indexImm32), reg}
}

// encodeOperand re-encodes a decoded operand into its canonical token
// form: IMM32 for displacements that fit, IMM64 otherwise, relative
// forms when a nested operand is present.
func encodeOperand(o *Operand) []uint32 {
	var tok uint32
	switch o.Comps {
	case 0:
		tok = operandComps0
	case 1:
		tok = operandComps1
	case 4:
		tok = operandComps4 | uint32(o.Mode)<<2
		switch o.Mode {
		case SelectMask:
			tok |= uint32(o.Mask) << 4
		case SelectSwizzle:
			for i, s := range o.Swizzle {
				tok |= uint32(s) << (4 + 2*i)
			}
		case SelectScalar:
			tok |= uint32(o.Swizzle[0]) << 4
		}
	}
	tok |= uint32(o.Type) << 12
	tok |= uint32(o.NumIndices) << 20

	words := []uint32{0}
	if o.Neg || o.Abs {
		tok |= tokenExtended
		ext := uint32(extOperandModifier)
		if o.Neg {
			ext |= extOperandNeg
		}
		if o.Abs {
			ext |= extOperandAbs
		}
		words = append(words, ext)
	}

	for i := 0; i < int(o.NumIndices); i++ {
		idx := o.Indices[i]
		var repr uint32
		switch {
		case idx.Rel == nil:
			if fitsInt32(idx.Disp) {
				repr = indexImm32
				words = append(words, uint32(idx.Disp))
			} else {
				repr = indexImm64
				words = append(words, uint32(uint64(idx.Disp)), uint32(uint64(idx.Disp)>>32))
			}
		case idx.Disp == 0:
			repr = indexRelative
			words = append(words, encodeOperand(idx.Rel)...)
		default:
			if fitsInt32(idx.Disp) {
				repr = indexImm32Relative
				words = append(words, uint32(idx.Disp))
			} else {
				repr = indexImm64Relative
				words = append(words, uint32(uint64(idx.Disp)), uint32(uint64(idx.Disp)>>32))
			}
			words = append(words, encodeOperand(idx.Rel)...)
		}
		tok |= repr << (22 + 3*i)
	}

	switch o.Type {
	case OperandImm32:
		for i := 0; i < int(o.Comps); i++ {
			words = append(words, uint32(o.Imm[i]))
		}
	case OperandImm64:
		for i := 0; i < int(o.Comps); i++ {
			words = append(words, uint32(o.Imm[i]), uint32(o.Imm[i]>>32))
		}
	}

	words[0] = tok
	return words
}

func fitsInt32(d int64) bool {
	return d >= math.MinInt32 && d <= math.MaxInt32
}
