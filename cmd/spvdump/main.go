package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to SPIR-V binary")
		headerOnly  = flag.Bool("header", false, "Print the module header and exit")
		validate    = flag.Bool("validate", false, "Validate the module structure")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: spvdump -in <file.spv> [-header] [-validate]")
		fmt.Fprintln(os.Stderr, "       spvdump -in <file.spv> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			spv.SetLogger(log)
		}
	}

	if *interactive {
		if err := runInteractive(*inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *headerOnly, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile string, headerOnly, validate bool) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	m, err := spv.Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	printHeader(m)
	if headerOnly {
		return nil
	}

	if validate {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		fmt.Println("Module is structurally valid.")
	}

	fmt.Println()
	for _, inst := range m.Instructions() {
		fmt.Println(formatInstruction(&inst))
	}
	return nil
}

func printHeader(m *spv.Module) {
	fmt.Printf("Version: %s\n", m.Header.Version)
	fmt.Printf("Generator: 0x%08x\n", m.Header.Generator)
	fmt.Printf("Bound: %d\n", m.Header.Bound)
	fmt.Printf("Schema: %d\n", m.Header.Schema)
	fmt.Printf("Functions: %d\n", len(m.Functions))
}

// formatInstruction renders one instruction in assembler-like form:
// the result id assignment, opcode name, then operands.
func formatInstruction(inst *spv.Instruction) string {
	var b strings.Builder
	if inst.ResultID != 0 {
		fmt.Fprintf(&b, "%8s = ", fmt.Sprintf("%%%d", inst.ResultID))
	} else {
		b.WriteString(strings.Repeat(" ", 11))
	}
	b.WriteString(grammar.OpcodeName(inst.Opcode))
	if inst.ResultType != 0 {
		fmt.Fprintf(&b, " %%%d", inst.ResultType)
	}
	for _, o := range inst.Operands {
		b.WriteByte(' ')
		b.WriteString(o.String())
	}
	return b.String()
}
