package models

// Profile holds per-run account metadata.
type Profile struct {
	LastSync string `json:"lastSync"`
}

// Export is the top-level output envelope wrapping the normalized
// observation set. It is built fresh on every run and never mutated
// after construction.
//
// LastSync and ExportedAt are captured by two separate clock reads and
// may differ by a few microseconds within one run.
type Export struct {
	Profile      Profile       `json:"profile"`
	Observations []Observation `json:"observations"`
	ExportedAt   string        `json:"exportedAt"`
}
