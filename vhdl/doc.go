// Package vhdl implements spec.md §4.H: the mandatory signalization pass and
// VHDL entity/architecture emission. Emission targets IEEE std_logic_1164
// and numeric_std only (§6): every physical port and signal is rendered as
// std_logic or std_logic_vector, every generic as integer/string/boolean.
//
// Rendering is pure text assembly via strings.Builder/fmt.Fprintf, matching
// the teacher's own style for generated output (see core/doc.go) rather than
// a template engine or an AST-based code generator — HwIR's output grammar
// is small and linear enough that string assembly stays readable.
package vhdl
