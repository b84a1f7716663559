// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// The RDEF chunk is offset-addressed rather than streamed: a header
// gives the counts and offsets of the constant-buffer and binding
// tables, and every name is a C-string reached by an offset relative
// to the payload base.

// byteReader gives bounds-checked random access into a chunk payload.
type byteReader struct {
	buf []byte
}

func (b byteReader) u32(off uint32) (uint32, error) {
	if int64(off)+4 > int64(len(b.buf)) {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(b.buf[off:]), nil
}

func (b byteReader) u16(off uint32) (uint16, error) {
	if int64(off)+2 > int64(len(b.buf)) {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint16(b.buf[off:]), nil
}

func (b byteReader) cstring(off uint32) (string, error) {
	if int64(off) >= int64(len(b.buf)) {
		return "", ErrTruncated
	}
	i := bytes.IndexByte(b.buf[off:], 0)
	if i < 0 {
		return "", ErrTruncated
	}
	return string(b.buf[off : int(off)+i]), nil
}

func (b byteReader) slice(off, n uint32) ([]byte, error) {
	if int64(off)+int64(n) > int64(len(b.buf)) {
		return nil, ErrTruncated
	}
	return b.buf[off : off+n], nil
}

// parseResources decodes the RDEF chunk into the program's constant
// buffers and resource bindings, resolves each buffer's bind point,
// and sorts cbuffer variables by start offset.
func (p *parser) parseResources(chunk []byte) error {
	if len(chunk) < 8 {
		return fmt.Errorf("resource chunk header: %w", ErrTruncated)
	}
	if tag := string(chunk[:4]); tag != tagRDEF {
		return fmt.Errorf("%w: resource chunk is %q, want %q", ErrBadMagic, tag, tagRDEF)
	}
	base := byteReader{chunk[8:]}

	var hdr [6]uint32 // num_cb, cb_offset, num_bindings, binding_offset, shader_model, compile_flags
	for i := range hdr {
		v, err := base.u32(uint32(4 * i))
		if err != nil {
			return fmt.Errorf("resource header: %w", err)
		}
		hdr[i] = v
	}
	numCB, cbOff := hdr[0], hdr[1]
	numBindings, bindOff := hdr[2], hdr[3]
	// hdr[4] (shader model) and hdr[5] (compile flags) are read but
	// carry nothing the decoder needs: record widths follow the parsed
	// program version.

	bindings := make([]ResourceBinding, numBindings)
	for i := range bindings {
		off := bindOff + uint32(i)*32
		var rec [8]uint32
		for j := range rec {
			v, err := base.u32(off + uint32(4*j))
			if err != nil {
				return fmt.Errorf("resource binding %d: %w", i, err)
			}
			rec[j] = v
		}
		name, err := base.cstring(rec[0])
		if err != nil {
			return fmt.Errorf("resource binding %d name: %w", i, err)
		}
		bindings[i] = ResourceBinding{
			Name:       name,
			Type:       ShaderInputType(rec[1]),
			ReturnType: ResourceReturnType(rec[2]),
			Dimension:  SRVDimension(rec[3]),
			NumSamples: rec[4],
			BindPoint:  rec[5],
			BindCount:  rec[6],
			Flags:      rec[7],
		}
	}
	p.prog.ResourceBindings = bindings

	cbuffers := make([]ConstantBuffer, numCB)
	cur := cbOff
	for i := range cbuffers {
		cb := &cbuffers[i]

		nameOff, err := base.u32(cur)
		if err != nil {
			return fmt.Errorf("constant buffer %d: %w", i, err)
		}
		varCount, err := base.u32(cur + 4)
		if err != nil {
			return fmt.Errorf("constant buffer %d: %w", i, err)
		}
		varOff, err := base.u32(cur + 8)
		if err != nil {
			return fmt.Errorf("constant buffer %d: %w", i, err)
		}
		cur += 12

		if cb.Name, err = base.cstring(nameOff); err != nil {
			return fmt.Errorf("constant buffer %d name: %w", i, err)
		}
		if cb.Variables, err = p.parseVariables(base, varOff, varCount); err != nil {
			return fmt.Errorf("constant buffer %q: %w", cb.Name, err)
		}

		if cb.Size, err = base.u32(cur); err != nil {
			return fmt.Errorf("constant buffer %q: %w", cb.Name, err)
		}
		if cb.Flags, err = base.u32(cur + 4); err != nil {
			return fmt.Errorf("constant buffer %q: %w", cb.Name, err)
		}
		var typ uint32
		if typ, err = base.u32(cur + 8); err != nil {
			return fmt.Errorf("constant buffer %q: %w", cb.Name, err)
		}
		cb.Type = CBufferType(typ)
		cur += 12

		if cb.BindPoint, err = bindPointFor(bindings, cb.Name); err != nil {
			return err
		}
	}
	p.prog.CBuffers = cbuffers

	p.sortCBVars()
	return nil
}

// parseVariables reads a constant buffer's variable table. Records are
// 6 words wide, or 10 on shader model 5+ where texture and sampler
// binding ranges were added; the width follows the parsed program
// version, not the header's shader-model word.
func (p *parser) parseVariables(base byteReader, varOff, varCount uint32) ([]ShaderVariable, error) {
	sm5 := p.prog.Version.Major >= 5
	stride := uint32(24)
	if sm5 {
		stride = 40
	}

	vars := make([]ShaderVariable, varCount)
	for i := range vars {
		v := &vars[i]
		off := varOff + uint32(i)*stride

		var rec [6]uint32 // name_offset, start_offset, size, flags, type_offset, default_value_offset
		for j := range rec {
			w, err := base.u32(off + uint32(4*j))
			if err != nil {
				return nil, fmt.Errorf("variable %d: %w", i, err)
			}
			rec[j] = w
		}

		name, err := base.cstring(rec[0])
		if err != nil {
			return nil, fmt.Errorf("variable %d name: %w", i, err)
		}
		v.Name = name
		v.StartOffset = rec[1]
		v.Size = rec[2]
		v.Flags = rec[3]
		typeOff, defaultOff := rec[4], rec[5]

		if sm5 {
			var ext [4]uint32
			for j := range ext {
				w, err := base.u32(off + 24 + uint32(4*j))
				if err != nil {
					return nil, fmt.Errorf("variable %q bindings: %w", v.Name, err)
				}
				ext[j] = w
			}
			v.StartTexture = ext[0]
			v.TextureSize = ext[1]
			v.StartSampler = ext[2]
			v.SamplerSize = ext[3]
		}

		if defaultOff != 0 {
			v.DefaultValue, err = base.slice(defaultOff, v.Size)
			if err != nil {
				return nil, fmt.Errorf("variable %q default value: %w", v.Name, err)
			}
		}

		if typeOff != 0 {
			v.Type, err = parseTypeDesc(base, typeOff)
			if err != nil {
				return nil, fmt.Errorf("variable %q type: %w", v.Name, err)
			}
		}
	}
	return vars, nil
}

// parseTypeDesc reads a variable type record: six 16-bit words, then
// the 32-bit member offset split across two 16-bit halves, high half
// first.
func parseTypeDesc(base byteReader, off uint32) (*VariableTypeDesc, error) {
	var rec [8]uint16
	for i := range rec {
		w, err := base.u16(off + uint32(2*i))
		if err != nil {
			return nil, err
		}
		rec[i] = w
	}
	td := &VariableTypeDesc{
		Class:    VariableClass(rec[0]),
		Type:     VariableType(rec[1]),
		Rows:     rec[2],
		Columns:  rec[3],
		Elements: rec[4],
		Members:  rec[5],
		Offset:   uint32(rec[6])<<16 | uint32(rec[7]),
	}
	td.Name = td.Type.String()
	return td, nil
}

// bindPointFor resolves a constant buffer's bind point by exact name
// match against the binding table.
func bindPointFor(bindings []ResourceBinding, name string) (uint32, error) {
	for i := range bindings {
		if bindings[i].Name == name {
			return bindings[i].BindPoint, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBindPointNotFound, name)
}

// sortCBVars orders each cbuffer's variables by ascending start
// offset. Tbuffers and other buffer kinds keep their table order.
func (p *parser) sortCBVars() {
	for i := range p.prog.CBuffers {
		cb := &p.prog.CBuffers[i]
		if cb.Type != CBufferCBuffer {
			continue
		}
		sort.SliceStable(cb.Variables, func(a, b int) bool {
			return cb.Variables[a].StartOffset < cb.Variables[b].StartOffset
		})
	}
}

// ShaderInputType classifies a resource binding.
type ShaderInputType uint32

// Shader input types.
const (
	InputCBuffer ShaderInputType = iota
	InputTBuffer
	InputTexture
	InputSampler
	InputUAVRWTyped
	InputStructured
	InputUAVRWStructured
	InputByteAddress
	InputUAVRWByteAddress
	InputUAVAppendStructured
	InputUAVConsumeStructured
	InputUAVRWStructuredWithCounter
)

// SRVDimension is the view dimension of a resource binding.
type SRVDimension uint32

// SRV dimensions.
const (
	SRVDimensionUnknown SRVDimension = iota
	SRVDimensionBuffer
	SRVDimensionTexture1D
	SRVDimensionTexture1DArray
	SRVDimensionTexture2D
	SRVDimensionTexture2DArray
	SRVDimensionTexture2DMS
	SRVDimensionTexture2DMSArray
	SRVDimensionTexture3D
	SRVDimensionTextureCube
	SRVDimensionTextureCubeArray
	SRVDimensionBufferEx
)

// CBufferType distinguishes the buffer kinds of the constant-buffer
// table.
type CBufferType uint32

// Constant buffer kinds.
const (
	CBufferCBuffer CBufferType = iota
	CBufferTBuffer
	CBufferInterfacePointers
	CBufferResourceBindInfo
)

// VariableClass is the shape class of a shader variable.
type VariableClass uint16

// Variable classes.
const (
	ClassScalar VariableClass = iota
	ClassVector
	ClassMatrixRows
	ClassMatrixColumns
	ClassObject
	ClassStruct
	ClassInterfaceClass
	ClassInterfacePointer
)

// VariableType is the base type of a shader variable.
type VariableType uint16

// Variable types.
const (
	VarVoid VariableType = iota
	VarBool
	VarInt
	VarFloat
	VarString
	VarTexture
	VarTexture1D
	VarTexture2D
	VarTexture3D
	VarTextureCube
	VarSampler
	VarSampler1D
	VarSampler2D
	VarSampler3D
	VarSamplerCube
	VarPixelShader
	VarVertexShader
	VarPixelFragment
	VarVertexFragment
	VarUInt
	VarUInt8
	VarGeometryShader
	VarRasterizer
	VarDepthStencil
	VarBlend
	VarBuffer
	VarCBuffer
	VarTBuffer
	VarTexture1DArray
	VarTexture2DArray
	VarRenderTargetView
	VarDepthStencilView
	VarTexture2DMS
	VarTexture2DMSArray
	VarTextureCubeArray
	VarHullShader
	VarDomainShader
	VarInterfacePointer
	VarComputeShader
	VarDouble
)

var variableTypeNames = map[VariableType]string{
	VarVoid: "void", VarBool: "bool", VarInt: "int", VarFloat: "float",
	VarString: "string", VarTexture: "texture", VarTexture1D: "Texture1D",
	VarTexture2D: "Texture2D", VarTexture3D: "Texture3D",
	VarTextureCube: "TextureCube", VarSampler: "SamplerState",
	VarSampler1D: "sampler1D", VarSampler2D: "sampler2D",
	VarSampler3D: "sampler3D", VarSamplerCube: "samplerCUBE",
	VarPixelShader: "PixelShader", VarVertexShader: "VertexShader",
	VarUInt: "uint", VarUInt8: "uint8", VarGeometryShader: "GeometryShader",
	VarRasterizer: "RasterizerState", VarDepthStencil: "DepthStencilState",
	VarBlend: "BlendState", VarBuffer: "Buffer", VarCBuffer: "cbuffer",
	VarTBuffer: "tbuffer", VarTexture1DArray: "Texture1DArray",
	VarTexture2DArray: "Texture2DArray",
	VarRenderTargetView: "RenderTargetView",
	VarDepthStencilView: "DepthStencilView",
	VarTexture2DMS: "Texture2DMS", VarTexture2DMSArray: "Texture2DMSArray",
	VarTextureCubeArray: "TextureCubeArray", VarHullShader: "HullShader",
	VarDomainShader: "DomainShader", VarInterfacePointer: "interface",
	VarComputeShader: "ComputeShader", VarDouble: "double",
}

func (t VariableType) String() string {
	if s, ok := variableTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}
