package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/move-binary-format/format"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		structs     = flag.Bool("structs", false, "List struct definitions and exit")
		deps        = flag.Bool("deps", false, "List dependencies and friends and exit")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		format.SetLogger(logger)
	}

	module, err := buildSampleModule()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(module); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(module, *structs, *deps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(m *format.CompiledModule, structsOnly, depsOnly bool) error {
	if !depsOnly {
		fmt.Printf("Module: %s (format version %d)\n", m.SelfID(), m.Version)
	}

	if !structsOnly {
		fmt.Printf("\nDependencies:\n")
		for _, id := range m.ImmediateDependencies() {
			fmt.Printf("  %s\n", id)
		}
		fmt.Printf("Friends:\n")
		for _, id := range m.ImmediateFriends() {
			fmt.Printf("  %s\n", id)
		}
	}
	if depsOnly {
		return nil
	}

	fmt.Printf("\nStructs:\n")
	for i := range m.StructDefsView() {
		idx := format.StructDefinitionIndex(i)
		def := m.StructDefAt(idx)
		handle := m.StructHandleAt(def.StructHandle)

		tok := format.StructToken(def.StructHandle)
		line := fmt.Sprintf("  %s %s", m.StructName(idx), handle.Abilities)
		if n := len(handle.TypeParameters); n > 0 {
			line += fmt.Sprintf(" (%d type parameters)", n)
		} else if abilities, err := m.Abilities(&tok, nil); err == nil {
			line += fmt.Sprintf(" -> %s", abilities)
		}
		fmt.Println(line)

		for f := 0; f < def.DeclaredFieldCount(); f++ {
			field := def.FieldAt(format.MemberCount(f))
			fmt.Printf("    %s: %s\n", m.IdentifierAt(field.Name), renderToken(m, &field.Signature))
		}
	}

	if structsOnly {
		return nil
	}

	fmt.Printf("\nFunctions:\n")
	for i := range m.FunctionDefsView() {
		def := m.FunctionDefAt(format.FunctionDefinitionIndex(i))
		handle := m.FunctionHandleAt(def.Function)
		fmt.Printf("  %s %s%s\n", def.Visibility, m.IdentifierAt(handle.Name), renderSignature(m, handle))
	}
	return nil
}

func renderSignature(m *format.CompiledModule, handle *format.FunctionHandle) string {
	params := m.SignatureAt(handle.Parameters)
	out := "("
	for i := range *params {
		if i > 0 {
			out += ", "
		}
		out += renderToken(m, &(*params)[i])
	}
	out += ")"
	returns := m.SignatureAt(handle.Return)
	for i := range *returns {
		if i == 0 {
			out += ": "
		} else {
			out += ", "
		}
		out += renderToken(m, &(*returns)[i])
	}
	return out
}

// renderToken is SignatureToken.String with struct handles resolved to
// their declared names.
func renderToken(m *format.CompiledModule, tok *format.SignatureToken) string {
	switch tok.Kind {
	case format.TokenVector:
		return "vector<" + renderToken(m, tok.Elem) + ">"
	case format.TokenReference:
		return "&" + renderToken(m, tok.Elem)
	case format.TokenMutableReference:
		return "&mut " + renderToken(m, tok.Elem)
	case format.TokenStruct:
		return string(m.IdentifierAt(m.StructHandleAt(tok.Struct).Name))
	case format.TokenStructInstantiation:
		out := string(m.IdentifierAt(m.StructHandleAt(tok.Struct).Name)) + "<"
		for i := range tok.TypeArgs {
			if i > 0 {
				out += ", "
			}
			out += renderToken(m, &tok.TypeArgs[i])
		}
		return out + ">"
	default:
		return tok.String()
	}
}
