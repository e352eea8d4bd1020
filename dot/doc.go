// Package dot implements spec.md §4.I: graphviz DOT emission for a HwIR
// component's internal node graph. Rather than hand-rolling DOT text, it
// adapts graph.Component/graph.Instance's node.Node objects onto
// gonum.org/v1/gonum/graph's Node/Edge/Graph interfaces (see adapt.go) and
// calls gonum's own encoding/dot.Marshal to do the actual text assembly —
// the one dependency in the retrieval corpus built specifically for this
// job (see DESIGN.md).
package dot
