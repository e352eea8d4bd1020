package vhdl

import (
	"fmt"

	"github.com/katalvlaran/hwir/graph"
)

// Emit implements spec.md §4.H end to end: it runs the mandatory
// signalization pass over every component, then renders an entity and
// architecture pair for each, returning one generated-source string per
// component keyed by its sanitized name. File I/O is left to the caller
// (spec.md §1's "file I/O helpers" non-goal).
//
// metadata carries per-emission overrides keyed by component name, then key
// (currently only "primitive" is consulted) — letting a caller mark a shared
// component primitive for this run without mutating its stored Metadata.
func Emit(comps []*graph.Component, metadata map[string]map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(comps))

	for _, comp := range comps {
		if err := signalize(comp); err != nil {
			return nil, fmt.Errorf("vhdl.Emit: %w", err)
		}
	}

	for _, comp := range comps {
		arch, err := architectureText(comp, metadata)
		if err != nil {
			return nil, fmt.Errorf("vhdl.Emit(%q): %w", comp.Name(), err)
		}
		out[sanitize(comp.Name())] = entityText(comp) + "\n" + arch
	}

	return out, nil
}
