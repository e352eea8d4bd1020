package dot

import (
	"fmt"
	"strings"

	godot "gonum.org/v1/gonum/graph/encoding/dot"

	hwirgraph "github.com/katalvlaran/hwir/graph"
)

// Emit renders one component's node graph as graphviz DOT text (spec.md
// §4.I: "Per graph, emit a cluster"). cfg controls which node kinds are
// hidden and whether expressions expand into a red-rooted subgraph.
func Emit(comp *hwirgraph.Component, cfg Config) (string, error) {
	g := newDotGraph(comp, cfg)
	out, err := godot.Marshal(g, "", "", "  ", false)
	if err != nil {
		return "", fmt.Errorf("dot.Emit(%q): %w", comp.Name(), err)
	}
	return string(out), nil
}

// sanitizeID produces a valid DOT identifier: alphanumerics and underscores
// only, matching godot.Marshal's own "alphabetic/digits/underscore" grammar
// rather than relying on its quoting fallback for every label.
func sanitizeID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
