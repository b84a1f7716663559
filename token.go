// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "fmt"

// This file defines the packed token layouts of the shader-code chunk.
// Tokens are decoded with explicit shift/mask accessors; the layouts
// follow the D3D10/D3D11 tokenized program format and must stay
// bit-compatible with it.

// Version identifies the shader model and program kind, decoded from
// the first token of the shader-code chunk.
type Version struct {
	Major uint8
	Minor uint8
	Type  ProgramType
}

// ProgramType is the shader stage recorded in the version token.
type ProgramType uint16

// Program types.
const (
	ProgramPixel ProgramType = iota
	ProgramVertex
	ProgramGeometry
	ProgramHull
	ProgramDomain
	ProgramCompute
)

func (t ProgramType) String() string {
	switch t {
	case ProgramPixel:
		return "ps"
	case ProgramVertex:
		return "vs"
	case ProgramGeometry:
		return "gs"
	case ProgramHull:
		return "hs"
	case ProgramDomain:
		return "ds"
	case ProgramCompute:
		return "cs"
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

// decodeVersion unpacks the version token: minor in bits 0-3, major in
// bits 4-7, program type in bits 16-31.
func decodeVersion(tok uint32) Version {
	return Version{
		Minor: uint8(tok & 0xf),
		Major: uint8(tok >> 4 & 0xf),
		Type:  ProgramType(tok >> 16),
	}
}

// Opcode token layout:
//
//	bits  0-10  opcode
//	bits 11-23  per-opcode modifier fields
//	bits 24-30  length in tokens, including this token
//	bit  31     extended token follows
const (
	opcodeTokenOpcodeMask = 0x7ff
	opcodeTokenLenShift   = 24
	opcodeTokenLenMask    = 0x7f
	opcodeTokenSaturate   = 1 << 13
	opcodeTokenTestNZ     = 1 << 18
	tokenExtended         = 1 << 31
)

func opcodeOf(tok uint32) Opcode   { return Opcode(tok & opcodeTokenOpcodeMask) }
func opcodeLen(tok uint32) int     { return int(tok >> opcodeTokenLenShift & opcodeTokenLenMask) }
func tokenIsExtended(tok uint32) bool { return tok&tokenExtended != 0 }

// opcodeCtrl returns the per-opcode modifier field at bits 11+ masked
// to the given width. Declarations pack their fixed payloads there.
func opcodeCtrl(tok uint32, mask uint32) uint32 { return tok >> 11 & mask }

// Opcode is a shader-model 4/5 instruction or declaration opcode.
type Opcode uint16

// Shader model 4 opcodes.
const (
	OpAdd Opcode = iota
	OpAnd
	OpBreak
	OpBreakC
	OpCall
	OpCallC
	OpCase
	OpContinue
	OpContinueC
	OpCut
	OpDefault
	OpDerivRTX
	OpDerivRTY
	OpDiscard
	OpDiv
	OpDP2
	OpDP3
	OpDP4
	OpElse
	OpEmit
	OpEmitThenCut
	OpEndIf
	OpEndLoop
	OpEndSwitch
	OpEq
	OpExp
	OpFrc
	OpFToI
	OpFToU
	OpGe
	OpIAdd
	OpIf
	OpIEq
	OpIGe
	OpILt
	OpIMad
	OpIMax
	OpIMin
	OpIMul
	OpINe
	OpINeg
	OpIShl
	OpIShr
	OpIToF
	OpLabel
	OpLd
	OpLdMS
	OpLog
	OpLoop
	OpLt
	OpMad
	OpMin
	OpMax
	OpImmediateConstantBuffer // custom-data block
	OpMov
	OpMovC
	OpMul
	OpNe
	OpNop
	OpNot
	OpOr
	OpResInfo
	OpRet
	OpRetC
	OpRoundNE
	OpRoundNI
	OpRoundPI
	OpRoundZ
	OpRsq
	OpSample
	OpSampleC
	OpSampleCLZ
	OpSampleL
	OpSampleD
	OpSampleB
	OpSqrt
	OpSwitch
	OpSinCos
	OpUDiv
	OpULt
	OpUGe
	OpUMul
	OpUMad
	OpUMax
	OpUMin
	OpUShr
	OpUToF
	OpXor
	OpDclResource
	OpDclConstantBuffer
	OpDclSampler
	OpDclIndexRange
	OpDclGSOutputPrimitiveTopology
	OpDclGSInputPrimitive
	OpDclMaxOutputVertexCount
	OpDclInput
	OpDclInputSGV
	OpDclInputSIV
	OpDclInputPS
	OpDclInputPSSGV
	OpDclInputPSSIV
	OpDclOutput
	OpDclOutputSGV
	OpDclOutputSIV
	OpDclTemps
	OpDclIndexableTemp
	OpDclGlobalFlags
	opReserved0
	OpLod
	OpGather4
	OpSamplePos
	OpSampleInfo
	opReserved1
	OpHSDecls
	OpHSControlPointPhase
	OpHSForkPhase
	OpHSJoinPhase
	OpEmitStream
	OpCutStream
	OpEmitThenCutStream
	OpInterfaceCall
	OpBufInfo
	OpDerivRTXCoarse
	OpDerivRTXFine
	OpDerivRTYCoarse
	OpDerivRTYFine
	OpGather4C
	OpGather4PO
	OpGather4POC
	OpRcp
	OpF32ToF16
	OpF16ToF32
	OpUAddC
	OpUSubB
	OpCountBits
	OpFirstBitHi
	OpFirstBitLo
	OpFirstBitSHi
	OpUBFE
	OpIBFE
	OpBFI
	OpBFRev
	OpSwapC
	OpDclStream
	OpDclFunctionBody
	OpDclFunctionTable
	OpDclInterface
	OpDclInputControlPointCount
	OpDclOutputControlPointCount
	OpDclTessDomain
	OpDclTessPartitioning
	OpDclTessOutputPrimitive
	OpDclHSMaxTessFactor
	OpDclHSForkPhaseInstanceCount
	OpDclHSJoinPhaseInstanceCount
	OpDclThreadGroup
	OpDclUAVTyped
	OpDclUAVRaw
	OpDclUAVStructured
	OpDclTGSMRaw
	OpDclTGSMStructured
	OpDclResourceRaw
	OpDclResourceStructured
	OpLdUAVTyped
	OpStoreUAVTyped
	OpLdRaw
	OpStoreRaw
	OpLdStructured
	OpStoreStructured
	OpAtomicAnd
	OpAtomicOr
	OpAtomicXor
	OpAtomicCmpStore
	OpAtomicIAdd
	OpAtomicIMax
	OpAtomicIMin
	OpAtomicUMax
	OpAtomicUMin
	OpImmAtomicAlloc
	OpImmAtomicConsume
	OpImmAtomicIAdd
	OpImmAtomicAnd
	OpImmAtomicOr
	OpImmAtomicXor
	OpImmAtomicExch
	OpImmAtomicCmpExch
	OpImmAtomicIMax
	OpImmAtomicIMin
	OpImmAtomicUMax
	OpImmAtomicUMin
	OpSync
	OpDAdd
	OpDMax
	OpDMin
	OpDMul
	OpDEq
	OpDGe
	OpDLt
	OpDNe
	OpDMov
	OpDMovC
	OpDToF
	OpFToD
	OpEvalSnapped
	OpEvalSampleIndex
	OpEvalCentroid
	OpDclGSInstanceCount

	opcodeCount
)

// isDeclaration reports whether the opcode belongs to the declaration
// families dispatched before the instruction branch.
func (op Opcode) isDeclaration() bool {
	return (op >= OpDclResource && op <= OpDclGlobalFlags) ||
		(op >= OpDclStream && op <= OpDclResourceStructured) ||
		op == OpDclGSInstanceCount
}

var opcodeNames = map[Opcode]string{
	OpAdd: "add", OpAnd: "and", OpBreak: "break", OpBreakC: "breakc",
	OpCall: "call", OpCallC: "callc", OpCase: "case", OpContinue: "continue",
	OpContinueC: "continuec", OpCut: "cut", OpDefault: "default",
	OpDerivRTX: "deriv_rtx", OpDerivRTY: "deriv_rty", OpDiscard: "discard",
	OpDiv: "div", OpDP2: "dp2", OpDP3: "dp3", OpDP4: "dp4", OpElse: "else",
	OpEmit: "emit", OpEmitThenCut: "emitthencut", OpEndIf: "endif",
	OpEndLoop: "endloop", OpEndSwitch: "endswitch", OpEq: "eq", OpExp: "exp",
	OpFrc: "frc", OpFToI: "ftoi", OpFToU: "ftou", OpGe: "ge", OpIAdd: "iadd",
	OpIf: "if", OpIEq: "ieq", OpIGe: "ige", OpILt: "ilt", OpIMad: "imad",
	OpIMax: "imax", OpIMin: "imin", OpIMul: "imul", OpINe: "ine",
	OpINeg: "ineg", OpIShl: "ishl", OpIShr: "ishr", OpIToF: "itof",
	OpLabel: "label", OpLd: "ld", OpLdMS: "ld_ms", OpLog: "log",
	OpLoop: "loop", OpLt: "lt", OpMad: "mad", OpMin: "min", OpMax: "max",
	OpImmediateConstantBuffer: "customdata", OpMov: "mov", OpMovC: "movc",
	OpMul: "mul", OpNe: "ne", OpNop: "nop", OpNot: "not", OpOr: "or",
	OpResInfo: "resinfo", OpRet: "ret", OpRetC: "retc",
	OpRoundNE: "round_ne", OpRoundNI: "round_ni", OpRoundPI: "round_pi",
	OpRoundZ: "round_z", OpRsq: "rsq", OpSample: "sample",
	OpSampleC: "sample_c", OpSampleCLZ: "sample_c_lz", OpSampleL: "sample_l",
	OpSampleD: "sample_d", OpSampleB: "sample_b", OpSqrt: "sqrt",
	OpSwitch: "switch", OpSinCos: "sincos", OpUDiv: "udiv", OpULt: "ult",
	OpUGe: "uge", OpUMul: "umul", OpUMad: "umad", OpUMax: "umax",
	OpUMin: "umin", OpUShr: "ushr", OpUToF: "utof", OpXor: "xor",
	OpDclResource: "dcl_resource", OpDclConstantBuffer: "dcl_constantbuffer",
	OpDclSampler: "dcl_sampler", OpDclIndexRange: "dcl_indexrange",
	OpDclGSOutputPrimitiveTopology: "dcl_outputtopology",
	OpDclGSInputPrimitive:          "dcl_inputprimitive",
	OpDclMaxOutputVertexCount:      "dcl_maxout",
	OpDclInput:                     "dcl_input",
	OpDclInputSGV:                  "dcl_input_sgv",
	OpDclInputSIV:                  "dcl_input_siv",
	OpDclInputPS:                   "dcl_input_ps",
	OpDclInputPSSGV:                "dcl_input_ps_sgv",
	OpDclInputPSSIV:                "dcl_input_ps_siv",
	OpDclOutput:                    "dcl_output",
	OpDclOutputSGV:                 "dcl_output_sgv",
	OpDclOutputSIV:                 "dcl_output_siv",
	OpDclTemps:                     "dcl_temps",
	OpDclIndexableTemp:             "dcl_indexabletemp",
	OpDclGlobalFlags:               "dcl_globalflags",
	OpLod: "lod", OpGather4: "gather4", OpSamplePos: "samplepos",
	OpSampleInfo: "sampleinfo", OpHSDecls: "hs_decls",
	OpHSControlPointPhase: "hs_control_point_phase",
	OpHSForkPhase:         "hs_fork_phase",
	OpHSJoinPhase:         "hs_join_phase",
	OpEmitStream:          "emit_stream",
	OpCutStream:           "cut_stream",
	OpEmitThenCutStream:   "emitthencut_stream",
	OpInterfaceCall:       "fcall",
	OpBufInfo:             "bufinfo",
	OpDerivRTXCoarse:      "deriv_rtx_coarse",
	OpDerivRTXFine:        "deriv_rtx_fine",
	OpDerivRTYCoarse:      "deriv_rty_coarse",
	OpDerivRTYFine:        "deriv_rty_fine",
	OpGather4C: "gather4_c", OpGather4PO: "gather4_po",
	OpGather4POC: "gather4_po_c", OpRcp: "rcp", OpF32ToF16: "f32tof16",
	OpF16ToF32: "f16tof32", OpUAddC: "uaddc", OpUSubB: "usubb",
	OpCountBits: "countbits", OpFirstBitHi: "firstbit_hi",
	OpFirstBitLo: "firstbit_lo", OpFirstBitSHi: "firstbit_shi",
	OpUBFE: "ubfe", OpIBFE: "ibfe", OpBFI: "bfi", OpBFRev: "bfrev",
	OpSwapC: "swapc", OpDclStream: "dcl_stream",
	OpDclFunctionBody:             "dcl_function_body",
	OpDclFunctionTable:            "dcl_function_table",
	OpDclInterface:                "dcl_interface",
	OpDclInputControlPointCount:   "dcl_input_control_point_count",
	OpDclOutputControlPointCount:  "dcl_output_control_point_count",
	OpDclTessDomain:               "dcl_tessellator_domain",
	OpDclTessPartitioning:         "dcl_tessellator_partitioning",
	OpDclTessOutputPrimitive:      "dcl_tessellator_output_primitive",
	OpDclHSMaxTessFactor:          "dcl_hs_max_tessfactor",
	OpDclHSForkPhaseInstanceCount: "dcl_hs_fork_phase_instance_count",
	OpDclHSJoinPhaseInstanceCount: "dcl_hs_join_phase_instance_count",
	OpDclThreadGroup:              "dcl_thread_group",
	OpDclUAVTyped:                 "dcl_uav_typed",
	OpDclUAVRaw:                   "dcl_uav_raw",
	OpDclUAVStructured:            "dcl_uav_structured",
	OpDclTGSMRaw:                  "dcl_tgsm_raw",
	OpDclTGSMStructured:           "dcl_tgsm_structured",
	OpDclResourceRaw:              "dcl_resource_raw",
	OpDclResourceStructured:       "dcl_resource_structured",
	OpLdUAVTyped: "ld_uav_typed", OpStoreUAVTyped: "store_uav_typed",
	OpLdRaw: "ld_raw", OpStoreRaw: "store_raw",
	OpLdStructured: "ld_structured", OpStoreStructured: "store_structured",
	OpAtomicAnd: "atomic_and", OpAtomicOr: "atomic_or",
	OpAtomicXor: "atomic_xor", OpAtomicCmpStore: "atomic_cmp_store",
	OpAtomicIAdd: "atomic_iadd", OpAtomicIMax: "atomic_imax",
	OpAtomicIMin: "atomic_imin", OpAtomicUMax: "atomic_umax",
	OpAtomicUMin: "atomic_umin", OpImmAtomicAlloc: "imm_atomic_alloc",
	OpImmAtomicConsume: "imm_atomic_consume",
	OpImmAtomicIAdd:    "imm_atomic_iadd", OpImmAtomicAnd: "imm_atomic_and",
	OpImmAtomicOr: "imm_atomic_or", OpImmAtomicXor: "imm_atomic_xor",
	OpImmAtomicExch:    "imm_atomic_exch",
	OpImmAtomicCmpExch: "imm_atomic_cmp_exch",
	OpImmAtomicIMax:    "imm_atomic_imax", OpImmAtomicIMin: "imm_atomic_imin",
	OpImmAtomicUMax: "imm_atomic_umax", OpImmAtomicUMin: "imm_atomic_umin",
	OpSync: "sync", OpDAdd: "dadd", OpDMax: "dmax", OpDMin: "dmin",
	OpDMul: "dmul", OpDEq: "deq", OpDGe: "dge", OpDLt: "dlt", OpDNe: "dne",
	OpDMov: "dmov", OpDMovC: "dmovc", OpDToF: "dtof", OpFToD: "ftod",
	OpEvalSnapped: "eval_snapped", OpEvalSampleIndex: "eval_sample_index",
	OpEvalCentroid: "eval_centroid",
	OpDclGSInstanceCount: "dcl_gs_instance_count",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint16(op))
}

// Operand token layout:
//
//	bits  0-1   component count selector (0, 1, 4, N)
//	bits  2-3   selection mode (mask, swizzle, scalar)
//	bits  4-11  selection bits
//	bits 12-19  operand type
//	bits 20-21  number of indices
//	bits 22-24, 25-27, 28-30  index representation per index
//	bit  31     extended token follows
const (
	operandComps0 = 0
	operandComps1 = 1
	operandComps4 = 2
	operandCompsN = 3
)

func operandComps(tok uint32) uint32      { return tok & 3 }
func operandMode(tok uint32) SelectionMode { return SelectionMode(tok >> 2 & 3) }
func operandSel(tok uint32) uint32        { return tok >> 4 & 0xff }
func operandTypeOf(tok uint32) OperandType { return OperandType(tok >> 12 & 0xff) }
func operandNumIndices(tok uint32) uint32 { return tok >> 20 & 3 }
func operandIndexRepr(tok uint32, i int) uint32 {
	return tok >> (22 + 3*i) & 7
}

func selMask(sel uint32) uint8         { return uint8(sel & 0xf) }
func selSwizzle(sel uint32, i int) uint8 { return uint8(sel >> (2 * i) & 3) }
func selScalar(sel uint32) uint8       { return uint8(sel & 3) }

// SelectionMode says how a 4-component operand selects components.
type SelectionMode uint8

// Selection modes.
const (
	SelectMask SelectionMode = iota
	SelectSwizzle
	SelectScalar
)

// Operand index representations.
const (
	indexImm32 = iota
	indexImm64
	indexRelative
	indexImm32Relative
	indexImm64Relative
)

// Extended operand token layout: type in bits 0-5; for the modifier
// type, neg in bit 6 and abs in bit 7.
const (
	extOperandEmpty    = 0
	extOperandModifier = 1

	extOperandNeg = 1 << 6
	extOperandAbs = 1 << 7
)

func extOperandType(tok uint32) uint32 { return tok & 0x3f }

// Extended instruction token layout: type in bits 0-5, payload above.
// Sample-control offsets are signed 4-bit fields.
const (
	extInsnEmpty              = 0
	extInsnSampleControls     = 1
	extInsnResourceDim        = 2
	extInsnResourceReturnType = 3
)

func extInsnType(tok uint32) uint32 { return tok & 0x3f }

func sampleOffset(tok uint32, i int) int8 {
	v := int8(tok >> (9 + 4*i) & 0xf)
	if v&8 != 0 {
		v |= ^int8(0xf)
	}
	return v
}

func extResourceTarget(tok uint32) ResourceTarget {
	return ResourceTarget(tok >> 6 & 0x1f)
}

func extReturnType(tok uint32, i int) ResourceReturnType {
	return ResourceReturnType(tok >> (6 + 4*i) & 0xf)
}

// decodeReturnTypeToken unpacks the four per-component resource return
// types from a return-type token (4 bits each, x first).
func decodeReturnTypeToken(tok uint32) [4]ResourceReturnType {
	var rt [4]ResourceReturnType
	for i := range rt {
		rt[i] = ResourceReturnType(tok >> (4 * i) & 0xf)
	}
	return rt
}

// OperandType is the register file or literal class of an operand.
type OperandType uint8

// Operand types.
const (
	OperandTemp OperandType = iota
	OperandInput
	OperandOutput
	OperandIndexableTemp
	OperandImm32
	OperandImm64
	OperandSampler
	OperandResource
	OperandConstantBuffer
	OperandImmConstantBuffer
	OperandLabel
	OperandInputPrimitiveID
	OperandOutputDepth
	OperandNull
	OperandRasterizer
	OperandOutputCoverageMask
	OperandStream
	OperandFunctionBody
	OperandFunctionTable
	OperandInterface
	OperandFunctionInput
	OperandFunctionOutput
	OperandOutputControlPointID
	OperandInputForkInstanceID
	OperandInputJoinInstanceID
	OperandInputControlPoint
	OperandOutputControlPoint
	OperandInputPatchConstant
	OperandInputDomainPoint
	OperandThisPointer
	OperandUAV
	OperandTGSM
	OperandInputThreadID
	OperandInputThreadGroupID
	OperandInputThreadIDInGroup
	OperandInputCoverageMask
	OperandInputThreadIDInGroupFlattened
	OperandInputGSInstanceID
	OperandOutputDepthGE
	OperandOutputDepthLE
	OperandCycleCounter

	operandTypeCount
)

var operandTypeNames = map[OperandType]string{
	OperandTemp: "r", OperandInput: "v", OperandOutput: "o",
	OperandIndexableTemp: "x", OperandImm32: "l", OperandImm64: "d",
	OperandSampler: "s", OperandResource: "t", OperandConstantBuffer: "cb",
	OperandImmConstantBuffer: "icb", OperandLabel: "label",
	OperandInputPrimitiveID: "vPrim", OperandOutputDepth: "oDepth",
	OperandNull: "null", OperandRasterizer: "rasterizer",
	OperandOutputCoverageMask: "oMask", OperandStream: "m",
	OperandFunctionBody: "fb", OperandFunctionTable: "ft",
	OperandInterface: "fp", OperandFunctionInput: "fi",
	OperandFunctionOutput:       "fo",
	OperandOutputControlPointID: "vOutputControlPointID",
	OperandInputForkInstanceID:  "vForkInstanceID",
	OperandInputJoinInstanceID:  "vJoinInstanceID",
	OperandInputControlPoint:    "vicp",
	OperandOutputControlPoint:   "vocp",
	OperandInputPatchConstant:   "vpc",
	OperandInputDomainPoint:     "vDomain",
	OperandThisPointer:          "this",
	OperandUAV:                  "u",
	OperandTGSM:                 "g",
	OperandInputThreadID:        "vThreadID",
	OperandInputThreadGroupID:   "vThreadGroupID",
	OperandInputThreadIDInGroup: "vThreadIDInGroup",
	OperandInputCoverageMask:    "vCoverage",
	OperandInputThreadIDInGroupFlattened: "vThreadIDInGroupFlattened",
	OperandInputGSInstanceID:             "vGSInstanceID",
	OperandOutputDepthGE:                 "oDepthGE",
	OperandOutputDepthLE:                 "oDepthLE",
	OperandCycleCounter:                  "vCycleCounter",
}

func (t OperandType) String() string {
	if s, ok := operandTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// SystemValue is the semantic tag of an SIV/SGV declaration.
type SystemValue uint16

// System values.
const (
	SVUndefined SystemValue = iota
	SVPosition
	SVClipDistance
	SVCullDistance
	SVRenderTargetArrayIndex
	SVViewportArrayIndex
	SVVertexID
	SVPrimitiveID
	SVInstanceID
	SVIsFrontFace
	SVSampleIndex
	SVFinalQuadUEq0EdgeTessFactor
	SVFinalQuadVEq0EdgeTessFactor
	SVFinalQuadUEq1EdgeTessFactor
	SVFinalQuadVEq1EdgeTessFactor
	SVFinalQuadUInsideTessFactor
	SVFinalQuadVInsideTessFactor
	SVFinalTriUEq0EdgeTessFactor
	SVFinalTriVEq0EdgeTessFactor
	SVFinalTriWEq0EdgeTessFactor
	SVFinalTriInsideTessFactor
	SVFinalLineDetailTessFactor
	SVFinalLineDensityTessFactor
)

// Primitive is a geometry-shader input primitive.
type Primitive uint8

// Input primitives. Values 8 and up are SM5 patch primitives with
// 1-32 control points.
const (
	PrimitiveUndefined   Primitive = 0
	PrimitivePoint       Primitive = 1
	PrimitiveLine        Primitive = 2
	PrimitiveTriangle    Primitive = 3
	PrimitiveLineAdj     Primitive = 6
	PrimitiveTriangleAdj Primitive = 7
)

// PrimitiveTopology is a geometry-shader output topology.
type PrimitiveTopology uint8

// Output topologies.
const (
	TopologyUndefined     PrimitiveTopology = 0
	TopologyPointList     PrimitiveTopology = 1
	TopologyLineList      PrimitiveTopology = 2
	TopologyLineStrip     PrimitiveTopology = 3
	TopologyTriangleList  PrimitiveTopology = 4
	TopologyTriangleStrip PrimitiveTopology = 5
)

// TessDomain is the domain-shader tessellator domain.
type TessDomain uint8

// Tessellator domains.
const (
	DomainUndefined TessDomain = iota
	DomainIsoline
	DomainTri
	DomainQuad
)

// TessPartitioning is the tessellator partitioning mode.
type TessPartitioning uint8

// Partitioning modes.
const (
	PartitioningUndefined TessPartitioning = iota
	PartitioningInteger
	PartitioningPow2
	PartitioningFractionalOdd
	PartitioningFractionalEven
)

// TessOutputPrimitive is the tessellator output primitive.
type TessOutputPrimitive uint8

// Tessellator output primitives.
const (
	TessOutputUndefined TessOutputPrimitive = iota
	TessOutputPoint
	TessOutputLine
	TessOutputTriangleCW
	TessOutputTriangleCCW
)

// ResourceTarget is the resource dimension of a declaration or an
// extended instruction token.
type ResourceTarget uint8

// Resource targets.
const (
	TargetUnknown ResourceTarget = iota
	TargetBuffer
	TargetTexture1D
	TargetTexture2D
	TargetTexture2DMS
	TargetTexture3D
	TargetTextureCube
	TargetTexture1DArray
	TargetTexture2DArray
	TargetTexture2DMSArray
	TargetTextureCubeArray
	TargetRawBuffer
	TargetStructuredBuffer
)

// ResourceReturnType is a per-component resource return type.
type ResourceReturnType uint8

// Resource return types.
const (
	ReturnUNorm ResourceReturnType = iota + 1
	ReturnSNorm
	ReturnSInt
	ReturnUInt
	ReturnFloat
	ReturnMixed
	ReturnDouble
	ReturnContinued
	ReturnUnused
)
