package dot

// Config selects which HwIR node kinds are hidden from a DOT rendering and
// whether an Expression node expands into a nested subgraph (spec.md §4.I:
// "Expand expressions into a nested subgraph with a red root when
// configured", recovered from original_source/.../dot/style.h's
// NodeIsExpanded behavior — SPEC_FULL.md §7.7).
//
// The zero Config hides nothing and expands nothing: every node the
// component's graph reaches is rendered flat, which is the right default
// for a small component and the wrong one for a deeply generic-heavy
// design — callers dial hiding up as a graph grows noisy.
type Config struct {
	HideLiterals    bool
	HideParameters  bool
	HideSignals     bool
	HidePorts       bool
	HideExpressions bool

	// ExpandExpressions renders an Expression node as a subgraph containing
	// its operand nodes, with the Expression itself styled as the red root
	// (original_source's expression-tree visualization).
	ExpandExpressions bool
}
