// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

// Program is the decoded form of a shader container: the tokenized
// instruction stream plus the reflection chunks that accompanied it.
// A Program owns every node reachable from it; only ShaderVariable
// default-value slices still alias the caller's input buffer.
type Program struct {
	Version Version

	// Decls and Insns hold the declaration and instruction streams in
	// the order they appeared.
	Decls []*Declaration
	Insns []*Instruction

	// Signature parameters from the ISGN/OSGN/PCSG family chunks.
	ParamsIn    []SignatureParameter
	ParamsOut   []SignatureParameter
	ParamsPatch []SignatureParameter

	// Reflection from the RDEF chunk.
	CBuffers         []ConstantBuffer
	ResourceBindings []ResourceBinding

	// Geometry-shader state.
	GSInputPrimitive  Primitive
	GSOutputTopology  []PrimitiveTopology // one entry per stream; slot 0 without dcl_stream
	MaxGSOutputVertex uint32
	GSInstanceCount   uint32

	// Hull/domain-shader state.
	TessOutputPrimitive TessOutputPrimitive
	TessPartitioning    TessPartitioning
	TessDomain          TessDomain
	InputControlPoints  uint32
	OutputControlPoints uint32

	// Compute-shader thread-group size.
	ThreadGroupSize [3]uint32
}

// Declaration is a single declaration from the token stream. Which
// payload fields are meaningful depends on Opcode; Token keeps the raw
// opcode token so per-opcode modifier bits stay available.
type Declaration struct {
	Opcode Opcode
	Token  uint32

	// Operand is the declared register, when the opcode has one.
	Operand *Operand

	// ReturnType holds the per-component return types of typed
	// resource and UAV declarations.
	ReturnType [4]ResourceReturnType

	// SystemValue tags SIV/SGV input and output declarations.
	SystemValue SystemValue

	// Num is the count word of counted declarations (temps, index
	// ranges, tessfactors, phase instance counts, function bodies,
	// custom-data token counts, raw shared-memory byte counts).
	Num uint32

	// IndexableTemp is the register shape of dcl_indexabletemp.
	IndexableTemp struct {
		Num   uint32
		Comps uint32
	}

	// Structured carries the stride (and for TGSM the element count)
	// of structured buffer and shared-memory declarations.
	Structured struct {
		Stride uint32
		Count  uint32
	}

	// Interface describes dcl_interface.
	Interface struct {
		ID                  uint32
		ExpectedTableLength uint32
		TableLength         uint16
		ArrayLength         uint16
	}

	// ThreadGroupSize is the dcl_thread_group triple.
	ThreadGroupSize [3]uint32

	// Data is the raw payload of immediate-constant-buffer custom
	// data, function tables, and interface tables, as little-endian
	// token bytes.
	Data []byte
}

// MaxOperands is the largest operand count of any shader-model 4/5
// instruction form.
const MaxOperands = 6

// Instruction is a single non-declaration token-stream entry.
type Instruction struct {
	Opcode Opcode
	Token  uint32

	// Saturate and TestNZ mirror the modifier bits of the opcode
	// token.
	Saturate bool
	TestNZ   bool

	// Operands in stream order, at most MaxOperands.
	Operands []*Operand

	// SampleOffset holds the u,v,w immediate texel offsets from a
	// sample-controls extended token.
	SampleOffset [3]int8

	// ResourceTarget and ResourceReturnType come from resource-dim and
	// resource-return-type extended tokens.
	ResourceTarget     ResourceTarget
	ResourceReturnType [4]ResourceReturnType

	// Num is the function count of fcall.
	Num uint32
}

// Operand is a source or destination of an instruction or declaration.
// Indices may themselves contain nested operands; each nested operand
// is exclusively owned by its index slot.
type Operand struct {
	Type OperandType

	// Comps is the component count: 0, 1 or 4.
	Comps uint8

	// Mode is the component selection mode, meaningful when Comps is 4.
	Mode SelectionMode

	// Swizzle defaults to identity; Mask defaults to all components.
	Swizzle [4]uint8
	Mask    uint8

	// Modifier flags from an extended operand token.
	Neg bool
	Abs bool

	NumIndices uint8
	Indices    [3]Index

	// Imm holds the raw bits of immediate values when Type is
	// OperandImm32 or OperandImm64, Comps wide.
	Imm [4]uint64
}

// Index is one operand index: a displacement, a nested operand, or
// both.
type Index struct {
	Disp int64
	Rel  *Operand
}

// ConstantBuffer is a cbuffer/tbuffer record from the RDEF chunk.
type ConstantBuffer struct {
	Name      string
	Variables []ShaderVariable
	Size      uint32
	Flags     uint32
	Type      CBufferType

	// BindPoint is resolved from the resource binding table by name.
	BindPoint uint32
}

// ShaderVariable is one member of a constant buffer.
type ShaderVariable struct {
	Name        string
	StartOffset uint32
	Size        uint32
	Flags       uint32

	// DefaultValue aliases the input chunk when the variable has a
	// default; nil otherwise.
	DefaultValue []byte

	// Texture/sampler binding ranges, present for shader model 5+.
	StartTexture uint32
	TextureSize  uint32
	StartSampler uint32
	SamplerSize  uint32

	// Type is the variable's type descriptor, when one was recorded.
	Type *VariableTypeDesc
}

// VariableTypeDesc describes a shader variable's type.
type VariableTypeDesc struct {
	Class    VariableClass
	Type     VariableType
	Rows     uint16
	Columns  uint16
	Elements uint16
	Members  uint16
	Offset   uint32
	Name     string
}

// ResourceBinding is one entry of the RDEF resource binding table.
type ResourceBinding struct {
	Name       string
	Type       ShaderInputType
	ReturnType ResourceReturnType
	Dimension  SRVDimension
	NumSamples uint32
	BindPoint  uint32
	BindCount  uint32
	Flags      uint32
}

// SignatureParameter is one element of an input, output, or
// patch-constant signature.
type SignatureParameter struct {
	SemanticName  string
	SemanticIndex uint32
	SystemValue   uint32
	ComponentType ComponentType
	Register      uint32
	Mask          uint8
	ReadWriteMask uint8

	// Stream is 0 for layouts that do not carry it.
	Stream uint32

	// MinPrecision is 0 for layouts that do not carry it.
	MinPrecision uint32
}

// ComponentType is the register component type of a signature
// parameter.
type ComponentType uint32

// Component types.
const (
	ComponentUnknown ComponentType = iota
	ComponentUint32
	ComponentSint32
	ComponentFloat32
)
