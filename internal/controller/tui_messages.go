package controller

import (
	m "github.com/mouse-blink/slugline/internal/model"
)

// List item types.
type resultItem struct {
	name    string
	outcome m.Outcome
}

func (r resultItem) FilterValue() string {
	return r.name
}
