// Package spirvtools provides a Go library for decoding, building and
// encoding SPIR-V modules.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	spirv-tools/         Root package with library-wide documentation
//	├── spv/             Module representation, binary codec, validation
//	├── builder/         Incremental module assembly with id allocation
//	├── grammar/         Static opcode and enumerant tables
//	├── errors/          Structured error types for debugging
//	└── cmd/spvdump/     Disassembly and inspection tool
//
// # Quick Start
//
// Decode a binary and inspect it:
//
//	m, err := spv.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Header.Version, m.Header.Bound)
//
// Build a module from scratch:
//
//	b := builder.New(spv.Version1_0)
//	b.AddCapability(grammar.CapabilityShader)
//	b.SetMemoryModel(grammar.AddressingLogical, grammar.MemoryModelGLSL450)
//
//	voidType := b.TypeVoid()
//	fnType := b.TypeFunction(voidType)
//	fn, _ := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
//	b.BeginBlock()
//	b.Emit(spv.Instruction{Opcode: grammar.OpReturn})
//	b.EndFunction()
//
//	b.AddEntryPoint(grammar.ExecutionModelGLCompute, fn, "main")
//	b.AddExecutionMode(fn, grammar.ExecutionModeLocalSize, 1, 1, 1)
//
//	m, err := b.Module()
//	data, err := m.Encode()
//
// Encoding is the byte-for-byte inverse of decoding, so modules can be
// loaded, transformed through builder.LoadModule and written back
// without disturbing untouched instructions.
package spirvtools
