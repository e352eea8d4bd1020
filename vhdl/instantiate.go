package vhdl

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/node"
)

// companionSignal returns the component-owned signal the signalization pass
// routed port through: its driver if port is an In port, or the sole
// destination of its single outgoing edge if port is an Out port. Every
// instance port has exactly one after signalize runs.
func companionSignal(port *node.Port) (*node.Signal, bool) {
	if in := port.InEdge(); in != nil {
		if s, ok := in.Src.(*node.Signal); ok {
			return s, true
		}
	}
	for _, e := range port.OutEdges() {
		if s, ok := e.Dst.(*node.Signal); ok {
			return s, true
		}
	}
	return nil, false
}

// instanceText renders one "name : component ... generic map ... port map
// ..." statement (spec.md §4.H's instance statements).
func instanceText(inst *graph.Instance) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s : %s\n", sanitize(inst.Name()), sanitize(inst.Component().Name()))

	params := inst.Parameters()
	if len(params) > 0 {
		b.WriteString("    generic map (\n")
		for i, p := range params {
			val := p.Value()
			if val == nil {
				val = p.Default()
			}
			sep := ","
			if i == len(params)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "      %s => %s%s\n", upper(p.Name()), valueText(val), sep)
		}
		b.WriteString("    )\n")
	}

	ports := inst.Ports()
	var mapLines []string
	for _, p := range ports {
		sig, ok := companionSignal(p)
		if !ok {
			continue
		}
		lines, err := portMapLines(p, sig)
		if err != nil {
			return "", fmt.Errorf("vhdl.instanceText(%q): port %q: %w", inst.Name(), p.Name(), err)
		}
		mapLines = append(mapLines, lines...)
	}
	if len(mapLines) > 0 {
		b.WriteString("    port map (\n")
		for i, l := range mapLines {
			sep := ","
			if i == len(mapLines)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "      %s%s\n", l, sep)
		}
		b.WriteString("    );\n")
	} else {
		b.WriteString("    ;\n")
	}

	return b.String(), nil
}
