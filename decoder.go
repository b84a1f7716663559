// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "fmt"

// parser carries the decode state for one shader-code chunk.
type parser struct {
	r         *tokenReader
	prog      *Program
	curStream int
}

// parseCode decodes the token stream of the shader-code chunk into the
// program's declaration and instruction lists.
func (p *parser) parseCode(code []byte) error {
	p.r = newTokenReader(code)

	vtok, err := p.r.uint32()
	if err != nil {
		return fmt.Errorf("version token: %w", err)
	}
	p.prog.Version = decodeVersion(vtok)

	lentok, err := p.r.uint32()
	if err != nil {
		return fmt.Errorf("length token: %w", err)
	}
	if err := p.r.truncate(p.r.tokenPos() - 2 + int(lentok)); err != nil {
		return fmt.Errorf("program length %d tokens: %w", lentok, err)
	}

	for !p.r.atEnd() {
		if err := p.readStatement(); err != nil {
			return err
		}
	}
	return nil
}

// readStatement decodes one opcode token and everything it owns: the
// extended-token chain, the declaration payload or the instruction
// operands, up to the length boundary the opcode token declared.
func (p *parser) readStatement() error {
	tok, err := p.r.uint32()
	if err != nil {
		return err
	}
	opcode := opcodeOf(tok)
	if opcode >= opcodeCount {
		return fmt.Errorf("%w: %d", ErrUnknownOpcode, uint16(opcode))
	}
	insnEnd := p.r.tokenPos() - 1 + opcodeLen(tok)

	if opcode == OpImmediateConstantBuffer {
		// Custom-data block: its own length word counts the whole
		// block including the two header tokens.
		return p.readCustomData(tok)
	}

	switch opcode {
	case OpHSForkPhase, OpHSJoinPhase, OpHSControlPointPhase, OpHSDecls:
		// Phase markers interleave with the declarations so phase
		// instance counts can be attached to the right phase.
		p.prog.Decls = append(p.prog.Decls, &Declaration{Opcode: opcode, Token: tok})
	}

	if opcode.isDeclaration() {
		return p.readDeclaration(tok, opcode, insnEnd)
	}
	if opcode == OpHSDecls {
		return nil
	}
	return p.readInstruction(tok, opcode, insnEnd)
}

func (p *parser) readCustomData(tok uint32) error {
	lenWord, err := p.r.uint32()
	if err != nil {
		return err
	}
	if lenWord < 2 {
		return fmt.Errorf("%w: custom-data length %d", ErrInvariant, lenWord)
	}
	n := int(lenWord) - 2
	data, err := p.r.bytes(n)
	if err != nil {
		return fmt.Errorf("custom-data payload: %w", err)
	}
	p.prog.Decls = append(p.prog.Decls, &Declaration{
		Opcode: OpImmediateConstantBuffer,
		Token:  tok,
		Num:    uint32(n),
		Data:   append([]byte(nil), data...),
	})
	return nil
}

// skipExtendedTokens walks an extended-token chain starting from the
// given token's extended bit, without interpreting the tokens. The
// chain must be consumed even when unmodeled or later reads misalign.
func (p *parser) skipExtendedTokens(tok uint32) error {
	for tokenIsExtended(tok) {
		var err error
		tok, err = p.r.uint32()
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) readDeclaration(tok uint32, opcode Opcode, insnEnd int) error {
	dcl := &Declaration{Opcode: opcode, Token: tok}
	p.prog.Decls = append(p.prog.Decls, dcl)

	if err := p.skipExtendedTokens(tok); err != nil {
		return err
	}

	var err error
	switch opcode {
	case OpDclGlobalFlags:
		// flags live in the opcode token

	case OpDclResource:
		if err = p.readDeclOperand(dcl); err == nil {
			err = p.readDeclReturnType(dcl)
		}

	case OpDclResourceRaw, OpDclSampler, OpDclInput, OpDclInputPS,
		OpDclOutput, OpDclConstantBuffer, OpDclUAVRaw:
		err = p.readDeclOperand(dcl)

	case OpDclInputSIV, OpDclInputSGV, OpDclInputPSSIV, OpDclInputPSSGV,
		OpDclOutputSIV, OpDclOutputSGV:
		if err = p.readDeclOperand(dcl); err == nil {
			err = p.readDeclSystemValue(dcl)
		}

	case OpDclIndexRange:
		if err = p.readDeclOperand(dcl); err != nil {
			break
		}
		if t := dcl.Operand.Type; t != OperandInput && t != OperandOutput {
			return fmt.Errorf("%w: dcl_indexrange operand type %v", ErrInvariant, t)
		}
		dcl.Num, err = p.r.uint32()

	case OpDclTemps, OpDclMaxOutputVertexCount, OpDclGSInstanceCount,
		OpDclHSMaxTessFactor, OpDclHSForkPhaseInstanceCount,
		OpDclHSJoinPhaseInstanceCount, OpDclFunctionBody:
		dcl.Num, err = p.r.uint32()
		switch opcode {
		case OpDclMaxOutputVertexCount:
			p.prog.MaxGSOutputVertex = dcl.Num
		case OpDclGSInstanceCount:
			p.prog.GSInstanceCount = dcl.Num
		}

	case OpDclIndexableTemp:
		var id uint32
		if id, err = p.r.uint32(); err != nil {
			break
		}
		dcl.Operand = &Operand{}
		dcl.Operand.Indices[0].Disp = int64(id)
		if dcl.IndexableTemp.Num, err = p.r.uint32(); err != nil {
			break
		}
		dcl.IndexableTemp.Comps, err = p.r.uint32()

	case OpDclGSInputPrimitive:
		p.prog.GSInputPrimitive = Primitive(opcodeCtrl(tok, 0x3f))

	case OpDclGSOutputPrimitiveTopology:
		p.setStreamTopology(PrimitiveTopology(opcodeCtrl(tok, 0x7f)))

	case OpDclTessOutputPrimitive:
		p.prog.TessOutputPrimitive = TessOutputPrimitive(opcodeCtrl(tok, 0x7))

	case OpDclTessPartitioning:
		p.prog.TessPartitioning = TessPartitioning(opcodeCtrl(tok, 0x7))

	case OpDclTessDomain:
		p.prog.TessDomain = TessDomain(opcodeCtrl(tok, 0x7))

	case OpDclOutputControlPointCount:
		p.prog.OutputControlPoints = opcodeCtrl(tok, 0x3f)

	case OpDclInputControlPointCount:
		p.prog.InputControlPoints = opcodeCtrl(tok, 0x3f)

	case OpDclFunctionTable:
		if dcl.Num, err = p.r.uint32(); err != nil {
			break
		}
		err = p.readDeclData(dcl, int(dcl.Num))

	case OpDclInterface:
		if dcl.Interface.ID, err = p.r.uint32(); err != nil {
			break
		}
		if dcl.Interface.ExpectedTableLength, err = p.r.uint32(); err != nil {
			break
		}
		var v uint32
		if v, err = p.r.uint32(); err != nil {
			break
		}
		dcl.Interface.TableLength = uint16(v)
		dcl.Interface.ArrayLength = uint16(v >> 16)
		err = p.readDeclData(dcl, int(dcl.Interface.TableLength))

	case OpDclThreadGroup:
		for i := range dcl.ThreadGroupSize {
			if dcl.ThreadGroupSize[i], err = p.r.uint32(); err != nil {
				break
			}
		}
		p.prog.ThreadGroupSize = dcl.ThreadGroupSize

	case OpDclUAVTyped:
		if err = p.readDeclOperand(dcl); err == nil {
			err = p.readDeclReturnType(dcl)
		}

	case OpDclUAVStructured, OpDclResourceStructured:
		if err = p.readDeclOperand(dcl); err == nil {
			dcl.Structured.Stride, err = p.r.uint32()
		}

	case OpDclTGSMRaw:
		if err = p.readDeclOperand(dcl); err == nil {
			dcl.Num, err = p.r.uint32()
		}

	case OpDclTGSMStructured:
		if err = p.readDeclOperand(dcl); err != nil {
			break
		}
		if dcl.Structured.Stride, err = p.r.uint32(); err != nil {
			break
		}
		dcl.Structured.Count, err = p.r.uint32()

	case OpDclStream:
		if err = p.readDeclOperand(dcl); err != nil {
			break
		}
		stream := dcl.Operand.Indices[0].Disp
		if stream < 0 || stream > 3 {
			return fmt.Errorf("%w: stream index %d", ErrInvariant, stream)
		}
		p.curStream = int(stream)
		p.prog.GSOutputTopology = append(p.prog.GSOutputTopology, TopologyUndefined)

	default:
		return fmt.Errorf("%w: unhandled declaration %v", ErrUnknownOpcode, opcode)
	}
	if err != nil {
		return fmt.Errorf("%v payload: %w", opcode, err)
	}

	if p.r.tokenPos() != insnEnd {
		return fmt.Errorf("%w: %v consumed %d tokens past its length", ErrInvariant, opcode, p.r.tokenPos()-insnEnd)
	}
	return nil
}

func (p *parser) readDeclOperand(dcl *Declaration) error {
	op, err := p.readOperand()
	if err != nil {
		return err
	}
	dcl.Operand = op
	return nil
}

func (p *parser) readDeclReturnType(dcl *Declaration) error {
	rrt, err := p.r.uint32()
	if err != nil {
		return err
	}
	dcl.ReturnType = decodeReturnTypeToken(rrt)
	return nil
}

func (p *parser) readDeclSystemValue(dcl *Declaration) error {
	sv, err := p.r.uint32()
	if err != nil {
		return err
	}
	dcl.SystemValue = SystemValue(uint16(sv))
	return nil
}

func (p *parser) readDeclData(dcl *Declaration, tokens int) error {
	data, err := p.r.bytes(tokens)
	if err != nil {
		return err
	}
	dcl.Data = append([]byte(nil), data...)
	return nil
}

// setStreamTopology records the output topology for the current
// geometry-shader stream. SM4 streams without dcl_stream still get
// slot 0.
func (p *parser) setStreamTopology(t PrimitiveTopology) {
	for len(p.prog.GSOutputTopology) <= p.curStream {
		p.prog.GSOutputTopology = append(p.prog.GSOutputTopology, TopologyUndefined)
	}
	p.prog.GSOutputTopology[p.curStream] = t
}

func (p *parser) readInstruction(tok uint32, opcode Opcode, insnEnd int) error {
	insn := &Instruction{
		Opcode:   opcode,
		Token:    tok,
		Saturate: tok&opcodeTokenSaturate != 0,
		TestNZ:   tok&opcodeTokenTestNZ != 0,
	}
	p.prog.Insns = append(p.prog.Insns, insn)

	ext := tok
	for tokenIsExtended(ext) {
		var err error
		if ext, err = p.r.uint32(); err != nil {
			return err
		}
		switch extInsnType(ext) {
		case extInsnSampleControls:
			for i := range insn.SampleOffset {
				insn.SampleOffset[i] = sampleOffset(ext, i)
			}
		case extInsnResourceDim:
			insn.ResourceTarget = extResourceTarget(ext)
		case extInsnResourceReturnType:
			for i := range insn.ResourceReturnType {
				insn.ResourceReturnType[i] = extReturnType(ext, i)
			}
		}
	}

	if opcode == OpInterfaceCall {
		var err error
		if insn.Num, err = p.r.uint32(); err != nil {
			return fmt.Errorf("fcall count: %w", err)
		}
	}

	for p.r.tokenPos() < insnEnd {
		if len(insn.Operands) >= MaxOperands {
			return fmt.Errorf("%w: %v has more than %d operands", ErrInvariant, opcode, MaxOperands)
		}
		op, err := p.readOperand()
		if err != nil {
			return fmt.Errorf("%v operand %d: %w", opcode, len(insn.Operands), err)
		}
		insn.Operands = append(insn.Operands, op)
	}
	if p.r.tokenPos() != insnEnd {
		return fmt.Errorf("%w: %v consumed %d tokens past its length", ErrInvariant, opcode, p.r.tokenPos()-insnEnd)
	}
	return nil
}
