// Package drugs holds the brand/generic drug-name entities and the CSV
// loader that produces them.
package drugs

// Pair is one brand-name / generic-name correspondence.
// Both fields are non-empty and case-preserved. Within a loaded set no
// two pairs share a brand and no two pairs share a generic, so either
// field can serve as a distractor pool without collisions.
type Pair struct {
	Brand   string
	Generic string
}
