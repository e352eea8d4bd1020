// Package hwtype: see types.go for the full package overview.
package hwtype
