package vhdl

import "strings"

// sanitize turns an internal HwIR node name into a valid VHDL identifier:
// array index brackets ("arr[0]") have no VHDL syntax, so they collapse into
// underscores ("arr_0").
func sanitize(name string) string {
	r := strings.NewReplacer("[", "_", "]", "", ".", "_")
	return r.Replace(name)
}

// upper renders a sanitized identifier in VHDL's conventional upper-case
// form, used for generic names and their references in range expressions.
func upper(name string) string {
	return strings.ToUpper(sanitize(name))
}
