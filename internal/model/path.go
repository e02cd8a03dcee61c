// Package model defines the data structures shared by the slug line workflow.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return string(p)
}
