// Package hwir is the single public entry point for the HwIR module:
// thin, one-line re-exports of the type and node constructors spec.md §6
// lists as the external interface, plus graph.Connect, so a caller only
// ever imports "github.com/katalvlaran/hwir/hwir" for everyday graph
// building and reaches into hwtype/node/graph/vhdl/dot directly only for
// the less common, package-specific operations.
package hwir
