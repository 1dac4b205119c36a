package models

// ExcludedRecord is a change the sensitive-path filter removed from
// consideration, with the rule that matched it
type ExcludedRecord struct {
	// Record that was excluded
	Record ChangeRecord
	// Pattern is the glob or heuristic name that matched ("secret-scan" for content hits)
	Pattern string
	// Reason explains why the rule exists
	Reason string
}
