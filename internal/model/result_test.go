package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
		changed bool
	}{
		{Unchanged, "unchanged", false},
		{Corrected, "corrected", true},
		{Inserted, "inserted", true},
		{Outcome(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.String())
			assert.Equal(t, tt.changed, tt.outcome.Changed())
		})
	}
}

func TestChangeResult_String(t *testing.T) {
	r := ChangeResult{Path: "/src/foo.py", Name: "foo.py", Outcome: Inserted}

	assert.Equal(t, "foo.py: inserted", r.String())
}

func TestCountChanges(t *testing.T) {
	results := []ChangeResult{
		{Name: "a.py", Outcome: Unchanged},
		{Name: "b.py", Outcome: Corrected},
		{Name: "c.py", Outcome: Inserted},
		{Name: "d.py", Outcome: Unchanged},
	}

	assert.Equal(t, 2, CountChanges(results))
	assert.Equal(t, 0, CountChanges(nil))
}

func TestPath_Base(t *testing.T) {
	assert.Equal(t, "foo.py", Path("pkg/sub/foo.py").Base())
	assert.Equal(t, "foo.py", Path("foo.py").String())
}
