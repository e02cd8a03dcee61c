package model

// Outcome is the result of enforcing the slug line on a single file.
// The zero value is Unchanged.
type Outcome int

const (
	// Unchanged means a valid slug line was already present.
	Unchanged Outcome = iota
	// Corrected means a slug line was present but named the wrong file.
	Corrected
	// Inserted means no slug line was present and one was prepended.
	Inserted
)

// Changed reports whether the outcome required rewriting the file.
func (o Outcome) Changed() bool {
	return o == Corrected || o == Inserted
}

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Corrected:
		return "corrected"
	case Inserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// ChangeResult describes what happened to one file.
type ChangeResult struct {
	Path    Path    // file that was inspected
	Name    string  // display name, base name or full path
	Outcome Outcome // final state, set at construction
}

// String renders the one-line report for the result.
func (r ChangeResult) String() string {
	return r.Name + ": " + r.Outcome.String()
}

// CountChanges returns the number of results whose outcome is not Unchanged.
func CountChanges(results []ChangeResult) int {
	count := 0

	for _, r := range results {
		if r.Outcome.Changed() {
			count++
		}
	}

	return count
}
