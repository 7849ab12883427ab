// Package parser extracts observation records from the rows of a
// life-list export (a comma-delimited text table with quoted spans).
package parser

import (
	"errors"
	"fmt"
	"strings"

	"lifelist/internal/models"
)

// Row parsing errors. Callers treat all of these as "skip this row and
// continue"; none of them aborts a run.
var (
	ErrBlankRow = errors.New("blank row")
	ErrShortRow = errors.New("insufficient fields in row")
	ErrBadDate  = errors.New("unparseable date field")
)

// minFields is the number of positional fields a conforming row carries.
const minFields = 9

// Positional field layout of a conforming export row (0-based).
const (
	idxCommon   = 3
	idxSciName  = 4
	idxLocation = 6
	idxRegion   = 7
	idxDate     = 8
)

// Parser turns raw export rows into Observation records.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRow parses a single export row into an Observation.
//
// Malformed rows (too few fields, or a date that does not normalize)
// return a sentinel error and are expected to be dropped by the caller.
// A row that is empty after trimming returns ErrBlankRow, which is a
// skip, not a defect.
func (p *Parser) ParseRow(rawLine string) (*models.Observation, error) {
	row := strings.TrimSpace(rawLine)
	if row == "" {
		return nil, ErrBlankRow
	}

	fields := splitFields(row)
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrShortRow, len(fields), minFields)
	}

	date, err := NormalizeDate(fields[idxDate])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDate, err)
	}

	return &models.Observation{
		Date:     date,
		SciName:  fields[idxSciName],
		Common:   fields[idxCommon],
		Location: strings.ReplaceAll(fields[idxLocation], `"`, ""),
		Region:   fields[idxRegion],
	}, nil
}

// splitFields tokenizes a row on commas while honoring double-quoted
// spans. A quote character toggles quoted mode and is consumed; commas
// inside a quoted span are literal. This is deliberately not an RFC 4180
// parser: the export never escapes quotes by doubling them, so a doubled
// quote here simply collapses out of the value. Every field is trimmed.
func splitFields(row string) []string {
	var fields []string

	var current strings.Builder

	inQuotes := false

	for _, ch := range row {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
