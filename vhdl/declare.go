package vhdl

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hwir/flatten"
	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/hwtype"
	"github.com/katalvlaran/hwir/node"
)

// literalText renders a Literal's value in VHDL surface syntax: a string
// literal is double-quoted, a boolean is "true"/"false", an integer is its
// plain decimal text (spec.md §6: "generic map values that are strings are
// double-quoted; booleans emit true/false").
func literalText(lit *node.Literal) string {
	switch lit.LitKind() {
	case node.LitString:
		return fmt.Sprintf("%q", lit.StringValue())
	case node.LitBool:
		if lit.BoolValue() {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%d", lit.IntValue())
	}
}

// valueText renders whatever node currently drives a Parameter: a Literal
// renders as its surface value, anything else (a Parameter or Expression,
// reached via a rebound generic map entry) renders as its upper-cased name.
func valueText(n node.Node) string {
	if lit, ok := n.(*node.Literal); ok {
		return literalText(lit)
	}
	return upper(node.ToString(n))
}

func paramLine(p *node.Parameter) string {
	return fmt.Sprintf("%s : %s := %s", upper(p.Name()), vhdlType(p.Type(), false), literalText(p.Default()))
}

// physicalLeaves returns t's flattening (flatten.Flatten) with the Record
// kind's own (non-physical) entries filtered out — VHDL has no declared
// record type to reference here (original_source/.../vhdl/declaration.cc's
// Decl::Generate(const Port&)/Decl::Generate(const Signal&) both call
// FilterForVHDL(Flatten(type())) before emitting), so a Record-typed
// port/signal declares one line per physical leaf instead of one line
// naming the record.
func physicalLeaves(t hwtype.Type) []flatten.FlatType {
	var out []flatten.FlatType
	for _, ft := range flatten.Flatten(t) {
		if ft.Type.Kind() == hwtype.KindRecord {
			continue
		}
		out = append(out, ft)
	}
	return out
}

// portLines renders one VHDL port declaration per physical leaf of p's
// type: a single line for a scalar/vector port, or one line per flattened
// field (e.g. "x_valid", "x_data", "x_ready") for a Record-typed port. A
// leaf whose path crosses a Reversed field declares the opposite direction
// from p's own (original_source/.../vhdl/declaration.cc's
// Decl::Generate(const Port&): "if (ft.reverse_) { ... Term::Reverse(port.dir())
// }") — a handshake's "ready" leaf physically flows the other way.
func portLines(p *node.Port) []string {
	force := p.Metadata().Has(forceVectorKey)
	leaves := physicalLeaves(p.Type())
	lines := make([]string, len(leaves))
	for i, leaf := range leaves {
		dir := p.Direction()
		if leaf.Reversed {
			dir = reverseDirection(dir)
		}
		lines[i] = fmt.Sprintf("%s : %s %s", leafIdent(p.Name(), leaf), dir.String(), vhdlType(leaf.Type, force))
	}
	return lines
}

func reverseDirection(d node.Direction) node.Direction {
	if d == node.In {
		return node.Out
	}
	return node.In
}

func portArrayLine(arr *node.NodeArray) string {
	base := arr.Base().(*node.Port)
	size, _ := arr.Size().(hwtype.Generic)
	return fmt.Sprintf("%s : %s %s", sanitize(arr.Name()), base.Direction().String(), vhdlArrayType(base.Type(), size))
}

// interfaceBlock renders the generic+port declaration shared by entity and
// component declarations (spec.md §4.H's emission step 1).
func interfaceBlock(b *strings.Builder, comp *graph.Component, header, footer string) {
	fmt.Fprintf(b, "%s\n", header)

	params := comp.Parameters()
	if len(params) > 0 {
		b.WriteString("  generic (\n")
		for i, p := range params {
			sep := ";"
			if i == len(params)-1 {
				sep = ""
			}
			fmt.Fprintf(b, "    %s%s\n", paramLine(p), sep)
		}
		b.WriteString("  );\n")
	}

	ports := comp.Ports()
	arrays := comp.PortArrays()
	if len(ports) > 0 || len(arrays) > 0 {
		b.WriteString("  port (\n")
		var lines []string
		for _, p := range ports {
			lines = append(lines, portLines(p)...)
		}
		for _, arr := range arrays {
			lines = append(lines, portArrayLine(arr))
		}
		for i, line := range lines {
			sep := ";"
			if i == len(lines)-1 {
				sep = ""
			}
			fmt.Fprintf(b, "    %s%s\n", line, sep)
		}
		b.WriteString("  );\n")
	}

	fmt.Fprintf(b, "%s\n", footer)
}

func entityText(comp *graph.Component) string {
	var b strings.Builder
	interfaceBlock(&b, comp, fmt.Sprintf("entity %s is", sanitize(comp.Name())), "end entity;")
	return b.String()
}

func componentDeclText(comp *graph.Component) string {
	var b strings.Builder
	interfaceBlock(&b, comp, fmt.Sprintf("component %s is", sanitize(comp.Name())), "end component;")
	return b.String()
}

// isPrimitive reports whether comp is flagged primitive=true for this
// emission run: metadata overrides (passed to Emit) take precedence over the
// component's own stored metadata, letting a caller mark a shared library
// component primitive for one emission without mutating it.
func isPrimitive(comp *graph.Component, overrides map[string]string) bool {
	if overrides != nil {
		if v, ok := overrides["primitive"]; ok {
			return v == "true"
		}
	}
	return comp.Metadata().Has("primitive")
}

// signalLines renders one VHDL signal declaration per physical leaf of s's
// type, the signal-side counterpart of portLines.
func signalLines(s *node.Signal) []string {
	force := s.Metadata().Has(forceVectorKey)
	leaves := physicalLeaves(s.Type())
	lines := make([]string, len(leaves))
	for i, leaf := range leaves {
		lines[i] = fmt.Sprintf("signal %s : %s;", leafIdent(s.Name(), leaf), vhdlType(leaf.Type, force))
	}
	return lines
}

func signalArrayLine(arr *node.NodeArray) string {
	base := arr.Base().(*node.Signal)
	size, _ := arr.Size().(hwtype.Generic)
	return fmt.Sprintf("signal %s : %s;", sanitize(arr.Name()), vhdlArrayType(base.Type(), size))
}
