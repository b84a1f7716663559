// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import "fmt"

// Signature chunks come in three on-disk element layouts, selected by
// the chunk tag:
//
//	ISGN/OSGN/PCSG  classic 24-byte record
//	OSG5            stream word prepended (28 bytes)
//	ISG1/OSG1       stream prepended, min-precision appended (32 bytes)
//
// The element table offset and all name offsets are relative to the
// chunk payload, which begins right after the 8-byte chunk header.
const (
	sigElementClassic = 24
	sigElementStream  = 28
	sigElementFull    = 32
)

// parseSignature decodes one signature chunk, dispatching the element
// layout on the chunk's own tag.
func parseSignature(chunk []byte) ([]SignatureParameter, error) {
	if len(chunk) < 16 {
		return nil, fmt.Errorf("signature chunk header: %w", ErrTruncated)
	}
	tag := string(chunk[:4])
	var elemSize uint32
	switch tag {
	case tagISGN, tagOSGN, tagPCSG:
		elemSize = sigElementClassic
	case tagOSG5:
		elemSize = sigElementStream
	case tagISG1, tagOSG1:
		elemSize = sigElementFull
	default:
		return nil, fmt.Errorf("%w: signature chunk %q", ErrBadMagic, tag)
	}

	base := byteReader{chunk[8:]}
	count, err := base.u32(0)
	if err != nil {
		return nil, err
	}
	tableOff, err := base.u32(4)
	if err != nil {
		return nil, err
	}

	params := make([]SignatureParameter, count)
	for i := range params {
		off := tableOff + uint32(i)*elemSize
		if params[i], err = parseSignatureElement(base, off, elemSize); err != nil {
			return nil, fmt.Errorf("signature element %d: %w", i, err)
		}
	}
	return params, nil
}

func parseSignatureElement(base byteReader, off, elemSize uint32) (SignatureParameter, error) {
	var param SignatureParameter

	if elemSize != sigElementClassic {
		stream, err := base.u32(off)
		if err != nil {
			return param, err
		}
		param.Stream = stream
		off += 4
	}

	var rec [5]uint32 // name_offset, semantic_index, system_value, component_type, register
	for j := range rec {
		v, err := base.u32(off + uint32(4*j))
		if err != nil {
			return param, err
		}
		rec[j] = v
	}
	name, err := base.cstring(rec[0])
	if err != nil {
		return param, err
	}
	masks, err := base.u32(off + 20) // mask byte, rw-mask byte, 2 bytes padding
	if err != nil {
		return param, err
	}

	param.SemanticName = name
	param.SemanticIndex = rec[1]
	param.SystemValue = rec[2]
	param.ComponentType = ComponentType(rec[3])
	param.Register = rec[4]
	param.Mask = uint8(masks)
	param.ReadWriteMask = uint8(masks >> 8)

	if elemSize == sigElementFull {
		mp, err := base.u32(off + 24)
		if err != nil {
			return param, err
		}
		param.MinPrecision = mp
	}
	return param, nil
}
