// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package dxbc decodes compiled DXBC (DirectX Byte Code) shader
// containers into a structured program representation.
//
// The decoder covers the tokenized shader-model 4/5 instruction and
// declaration stream, the RDEF resource-definition chunk (constant
// buffers, shader variables, resource bindings), and the
// input/output/patch-constant signature chunks in all three of their
// on-disk layouts. The result is a Program suitable for translation to
// another shading language; the package does not interpret HLSL
// semantics, generate code, or talk to a driver.
//
// Example usage:
//
//	container, err := dxbc.ScanContainer(blob)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	program, err := dxbc.Parse(*container)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, insn := range program.Insns {
//	    fmt.Println(insn.Opcode)
//	}
//
// Callers that locate chunks themselves can fill a Container directly;
// each field holds one chunk, tag and size header included. Parsing is
// a single synchronous pass with no shared state, so distinct
// containers may be parsed concurrently with independent calls.
package dxbc

import "fmt"

// Container is the set of chunk references the decoder consumes. Code
// is required; the rest are optional and may be nil. Every slice is a
// whole chunk starting at its four-character tag. The decoder reads
// but never retains the chunk memory, except for variable
// default-value slices, which alias the Resources chunk.
type Container struct {
	// Code is the SHDR or SHEX chunk holding the token stream.
	Code []byte

	// Resources is the RDEF resource-definition chunk.
	Resources []byte

	// InputSignature is an ISGN or ISG1 chunk.
	InputSignature []byte

	// OutputSignature is an OSGN, OSG5, or OSG1 chunk.
	OutputSignature []byte

	// PatchConstantSignature is a PCSG chunk.
	PatchConstantSignature []byte
}

// Parse decodes a shader container into a Program.
//
// The pipeline is:
//  1. Decode the shader-code token stream (declarations and
//     instructions).
//  2. Decode the resource chunk, if present: resource bindings, then
//     constant buffers, with cbuffer variables sorted by start offset
//     and bind points resolved by name.
//  3. Decode each present signature chunk by its own tag.
//
// On any failure Parse returns a nil Program and an error wrapping one
// of the package's error kinds; it never returns a partially-populated
// Program as success.
func Parse(c Container) (*Program, error) {
	tokens, err := codePayload(c.Code)
	if err != nil {
		return nil, err
	}

	p := &parser{prog: &Program{}}
	if err := p.parseCode(tokens); err != nil {
		return nil, fmt.Errorf("shader code: %w", err)
	}

	if c.Resources != nil {
		if err := p.parseResources(c.Resources); err != nil {
			return nil, fmt.Errorf("resource chunk: %w", err)
		}
	}

	if c.InputSignature != nil {
		if err := requireTag(c.InputSignature, tagISGN, tagISG1); err != nil {
			return nil, fmt.Errorf("input signature: %w", err)
		}
		if p.prog.ParamsIn, err = parseSignature(c.InputSignature); err != nil {
			return nil, fmt.Errorf("input signature: %w", err)
		}
	}
	if c.OutputSignature != nil {
		if err := requireTag(c.OutputSignature, tagOSGN, tagOSG5, tagOSG1); err != nil {
			return nil, fmt.Errorf("output signature: %w", err)
		}
		if p.prog.ParamsOut, err = parseSignature(c.OutputSignature); err != nil {
			return nil, fmt.Errorf("output signature: %w", err)
		}
	}
	if c.PatchConstantSignature != nil {
		if err := requireTag(c.PatchConstantSignature, tagPCSG); err != nil {
			return nil, fmt.Errorf("patch constant signature: %w", err)
		}
		if p.prog.ParamsPatch, err = parseSignature(c.PatchConstantSignature); err != nil {
			return nil, fmt.Errorf("patch constant signature: %w", err)
		}
	}

	return p.prog, nil
}

// ParseBytes scans a whole DXBC blob for its chunks and parses it.
// This is the simplest way to decode a compiled shader. For more
// control over chunk selection, use ScanContainer and Parse.
func ParseBytes(data []byte) (*Program, error) {
	c, err := ScanContainer(data)
	if err != nil {
		return nil, err
	}
	return Parse(*c)
}

// codePayload validates the shader-code chunk and returns its token
// stream, whose byte length the chunk header declares.
func codePayload(chunk []byte) ([]byte, error) {
	if len(chunk) < 8 {
		return nil, fmt.Errorf("shader code chunk header: %w", ErrTruncated)
	}
	if tag := string(chunk[:4]); tag != tagSHDR && tag != tagSHEX {
		return nil, fmt.Errorf("%w: shader code chunk is %q", ErrBadMagic, tag)
	}
	size := chunkSize(chunk)
	payload := chunk[8:]
	if int64(size) > int64(len(payload)) {
		return nil, fmt.Errorf("shader code chunk of %d bytes: %w", size, ErrTruncated)
	}
	return payload[:size], nil
}

// requireTag checks a caller-supplied chunk against the tags valid for
// its slot.
func requireTag(chunk []byte, tags ...string) error {
	if len(chunk) < 8 {
		return fmt.Errorf("chunk header: %w", ErrTruncated)
	}
	got := string(chunk[:4])
	for _, t := range tags {
		if got == t {
			return nil
		}
	}
	return fmt.Errorf("%w: chunk is %q, want one of %v", ErrBadMagic, got, tags)
}
