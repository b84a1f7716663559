// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dxbc

import (
	"encoding/binary"
	"errors"
	"testing"
)

// buildContainer assembles a DXBC blob from whole chunks.
func buildContainer(chunks ...[]byte) []byte {
	total := containerHeaderSize + 4*len(chunks)
	offsets := make([]uint32, len(chunks))
	for i, c := range chunks {
		offsets[i] = uint32(total)
		total += len(c)
	}

	b := make([]byte, 0, total)
	b = append(b, tagDXBC...)
	b = append(b, make([]byte, 16)...) // digest
	var w [4]byte
	u32 := func(v uint32) {
		binary.LittleEndian.PutUint32(w[:], v)
		b = append(b, w[:]...)
	}
	u32(1)
	u32(uint32(total))
	u32(uint32(len(chunks)))
	for _, off := range offsets {
		u32(off)
	}
	for _, c := range chunks {
		b = append(b, c...)
	}
	return b
}

func minimalCodeChunk() []byte {
	return chunk(tagSHEX, shaderCode(versionToken(5, 0, ProgramVertex), opcodeToken(OpRet, 1)))
}

func TestScanContainer(t *testing.T) {
	code := minimalCodeChunk()
	isgn := sigChunk(tagISGN, nil, nil)
	osgn := sigChunk(tagOSGN, nil, nil)
	rdef := chunk(tagRDEF, rdefPayload([]uint32{0, 24, 0, 24, 0x500, 0}, nil))
	junk := chunk("STAT", make([]byte, 12))

	c, err := ScanContainer(buildContainer(rdef, isgn, osgn, junk, code))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c.Code == nil || string(c.Code[:4]) != tagSHEX {
		t.Error("Expected a SHEX code chunk")
	}
	if c.Resources == nil || string(c.Resources[:4]) != tagRDEF {
		t.Error("Expected an RDEF chunk")
	}
	if c.InputSignature == nil || c.OutputSignature == nil {
		t.Error("Expected both signature chunks")
	}
	if c.PatchConstantSignature != nil {
		t.Error("Expected no patch constant signature")
	}
}

func TestScanContainerBadMagic(t *testing.T) {
	blob := buildContainer(minimalCodeChunk())
	copy(blob, "DXIL")
	if _, err := ScanContainer(blob); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic, got %v", err)
	}
}

func TestScanContainerNoCode(t *testing.T) {
	blob := buildContainer(sigChunk(tagISGN, nil, nil))
	if _, err := ScanContainer(blob); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic for missing code chunk, got %v", err)
	}
}

func TestScanContainerTruncatedPrefixes(t *testing.T) {
	blob := buildContainer(minimalCodeChunk(), sigChunk(tagOSGN, nil, nil))
	for n := 0; n < len(blob); n++ {
		_, err := ScanContainer(blob[:n])
		if err == nil {
			t.Fatalf("Prefix of %d bytes: expected an error", n)
		}
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Prefix of %d bytes: expected ErrTruncated, got %v", n, err)
		}
	}
}
