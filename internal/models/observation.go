// Package models defines data structures for the life-list normalizer.
package models

// Observation represents one normalized bird-sighting record.
// Date is always a 10-character YYYY-MM-DD string; rows whose date
// cannot be normalized are dropped before an Observation is built.
type Observation struct {
	Date     string `json:"date"`
	SciName  string `json:"sciName"`
	Common   string `json:"common"`
	Location string `json:"location"`
	Region   string `json:"region"`
}
