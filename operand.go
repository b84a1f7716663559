// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "fmt"

// readOperand decodes one operand token together with its extended
// token, indices, and immediate values. Relative indices recurse into
// readOperand; the stream-reading construction makes the resulting
// tree finite.
func (p *parser) readOperand() (*Operand, error) {
	tok, err := p.r.uint32()
	if err != nil {
		return nil, err
	}

	ot := operandTypeOf(tok)
	if ot >= operandTypeCount {
		return nil, fmt.Errorf("%w: operand type %d", ErrUnknownOpcode, ot)
	}

	op := &Operand{
		Type:    ot,
		Swizzle: [4]uint8{0, 1, 2, 3},
		Mask:    0xf,
	}

	sel := operandSel(tok)
	switch operandComps(tok) {
	case operandComps0:
		op.Comps = 0

	case operandComps1:
		op.Comps = 1
		op.Swizzle[1], op.Swizzle[2], op.Swizzle[3] = 0, 0, 0

	case operandComps4:
		op.Comps = 4
		op.Mode = operandMode(tok)
		switch op.Mode {
		case SelectMask:
			op.Mask = selMask(sel)
		case SelectSwizzle:
			for i := range op.Swizzle {
				op.Swizzle[i] = selSwizzle(sel, i)
			}
		case SelectScalar:
			s := selScalar(sel)
			op.Swizzle = [4]uint8{s, s, s, s}
		default:
			return nil, fmt.Errorf("%w: operand selection mode %d", ErrInvariant, op.Mode)
		}

	default:
		return nil, fmt.Errorf("%w: operand component count selector %d", ErrInvariant, operandComps(tok))
	}

	op.NumIndices = uint8(operandNumIndices(tok))

	if tokenIsExtended(tok) {
		ext, err := p.r.uint32()
		if err != nil {
			return nil, err
		}
		switch extOperandType(ext) {
		case extOperandEmpty:
			// consumed, no semantics
		case extOperandModifier:
			op.Neg = ext&extOperandNeg != 0
			op.Abs = ext&extOperandAbs != 0
		default:
			return nil, fmt.Errorf("%w: type %d", ErrUnknownExtendedOperand, extOperandType(ext))
		}
	}

	for i := 0; i < int(op.NumIndices); i++ {
		switch operandIndexRepr(tok, i) {
		case indexImm32:
			v, err := p.r.uint32()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Disp = int64(int32(v))

		case indexImm64:
			v, err := p.r.uint64()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Disp = int64(v)

		case indexRelative:
			rel, err := p.readOperand()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Rel = rel

		case indexImm32Relative:
			v, err := p.r.uint32()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Disp = int64(int32(v))
			rel, err := p.readOperand()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Rel = rel

		case indexImm64Relative:
			v, err := p.r.uint64()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Disp = int64(v)
			rel, err := p.readOperand()
			if err != nil {
				return nil, err
			}
			op.Indices[i].Rel = rel

		default:
			return nil, fmt.Errorf("%w: repr %d for index %d", ErrUnknownIndexRepr, operandIndexRepr(tok, i), i)
		}
	}

	switch op.Type {
	case OperandImm32:
		for i := 0; i < int(op.Comps); i++ {
			v, err := p.r.uint32()
			if err != nil {
				return nil, err
			}
			op.Imm[i] = uint64(v)
		}
	case OperandImm64:
		for i := 0; i < int(op.Comps); i++ {
			v, err := p.r.uint64()
			if err != nil {
				return nil, err
			}
			op.Imm[i] = v
		}
	}

	return op, nil
}
