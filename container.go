// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"encoding/binary"
	"fmt"
)

// Chunk tags.
const (
	tagDXBC = "DXBC"
	tagSHDR = "SHDR"
	tagSHEX = "SHEX"
	tagRDEF = "RDEF"
	tagISGN = "ISGN"
	tagISG1 = "ISG1"
	tagOSGN = "OSGN"
	tagOSG5 = "OSG5"
	tagOSG1 = "OSG1"
	tagPCSG = "PCSG"
)

// Container header layout: 4-byte magic, 16-byte digest, version word,
// total size, chunk count, then one absolute chunk offset per chunk.
const containerHeaderSize = 4 + 16 + 4 + 4 + 4

// chunkSize reads the payload size word of a chunk header. The caller
// must have checked len(chunk) >= 8.
func chunkSize(chunk []byte) uint32 {
	return binary.LittleEndian.Uint32(chunk[4:])
}

// ScanContainer walks a DXBC blob's chunk table and collects the
// chunks the decoder consumes. Unknown chunks are skipped. The
// returned Container's slices alias data.
func ScanContainer(data []byte) (*Container, error) {
	if len(data) < containerHeaderSize {
		return nil, fmt.Errorf("container header: %w", ErrTruncated)
	}
	if tag := string(data[:4]); tag != tagDXBC {
		return nil, fmt.Errorf("%w: container magic %q", ErrBadMagic, tag)
	}

	count := binary.LittleEndian.Uint32(data[28:])
	if int64(containerHeaderSize)+int64(count)*4 > int64(len(data)) {
		return nil, fmt.Errorf("container chunk table of %d entries: %w", count, ErrTruncated)
	}

	var c Container
	for i := uint32(0); i < count; i++ {
		off := binary.LittleEndian.Uint32(data[containerHeaderSize+4*i:])
		if int64(off)+8 > int64(len(data)) {
			return nil, fmt.Errorf("chunk %d header at offset %d: %w", i, off, ErrTruncated)
		}
		size := chunkSize(data[off:])
		end := int64(off) + 8 + int64(size)
		if end > int64(len(data)) {
			return nil, fmt.Errorf("chunk %d of %d bytes: %w", i, size, ErrTruncated)
		}
		chunk := data[off:end]

		switch string(chunk[:4]) {
		case tagSHDR, tagSHEX:
			c.Code = chunk
		case tagRDEF:
			c.Resources = chunk
		case tagISGN, tagISG1:
			c.InputSignature = chunk
		case tagOSGN, tagOSG5, tagOSG1:
			c.OutputSignature = chunk
		case tagPCSG:
			c.PatchConstantSignature = chunk
		}
	}

	if c.Code == nil {
		return nil, fmt.Errorf("%w: container has no shader code chunk", ErrBadMagic)
	}
	return &c, nil
}
