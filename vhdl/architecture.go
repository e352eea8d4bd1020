package vhdl

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/node"
)

// architectureText renders a component's architecture body (spec.md §4.H's
// emission step 2): component declarations for every uniquely instantiated
// blueprint (skipping those flagged primitive), signal declarations,
// instance statements, then concurrent assignments.
func architectureText(comp *graph.Component, overrides map[string]map[string]string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "architecture Implementation of %s is\n", sanitize(comp.Name()))

	for _, decl := range uniqueInstantiatedComponents(comp) {
		if isPrimitive(decl, overrides[decl.Name()]) {
			continue
		}
		b.WriteString(indentBlock(componentDeclText(decl), "  "))
		b.WriteString("\n")
	}

	for _, s := range comp.Signals() {
		for _, line := range signalLines(s) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	for _, arr := range comp.SignalArrays() {
		fmt.Fprintf(&b, "  %s\n", signalArrayLine(arr))
	}

	b.WriteString("begin\n")

	for _, inst := range comp.Instances() {
		text, err := instanceText(inst)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	lines, err := concurrentAssignments(comp)
	if err != nil {
		return "", err
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "  %s\n", l)
	}

	b.WriteString("end architecture;\n")
	return b.String(), nil
}

// uniqueInstantiatedComponents returns the distinct blueprints comp's
// instances were stamped from, in first-instantiated order.
func uniqueInstantiatedComponents(comp *graph.Component) []*graph.Component {
	seen := make(map[*graph.Component]bool)
	var out []*graph.Component
	for _, inst := range comp.Instances() {
		blueprint := inst.Component()
		if seen[blueprint] {
			continue
		}
		seen[blueprint] = true
		out = append(out, blueprint)
	}
	return out
}

// concurrentAssignments implements spec.md §4.H's "concurrent assignments
// for every port and signal that is sourced (skip ports sourced from an
// instance — already mapped in the instance)": after signalize runs, a
// component port is only ever sourced by a component-owned signal (direct
// instance-port sourcing was rerouted through one), and a signal sourced
// directly by an instance port needs no separate line — that association is
// already the instance statement's own port map entry.
func concurrentAssignments(comp *graph.Component) ([]string, error) {
	var lines []string
	for _, p := range comp.Ports() {
		in := p.InEdge()
		if in == nil {
			continue
		}
		src, ok := in.Src.(typed)
		if !ok {
			continue
		}
		ls, err := assignmentLines(p, src)
		if err != nil {
			return nil, fmt.Errorf("vhdl: port %q: %w", p.Name(), err)
		}
		lines = append(lines, ls...)
	}
	for _, s := range comp.Signals() {
		in := s.InEdge()
		if in == nil {
			continue
		}
		if sourcedFromInstance(in.Src) {
			continue
		}
		src, ok := in.Src.(typed)
		if !ok {
			continue
		}
		ls, err := assignmentLines(s, src)
		if err != nil {
			return nil, fmt.Errorf("vhdl: signal %q: %w", s.Name(), err)
		}
		lines = append(lines, ls...)
	}
	return lines, nil
}

func sourcedFromInstance(n node.Node) bool {
	p, ok := n.(*node.Port)
	if !ok {
		return false
	}
	_, ok = p.Parent().(*graph.Instance)
	return ok
}

// indentBlock prefixes every non-empty line of s with indent.
func indentBlock(s, indent string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
