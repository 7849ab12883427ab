// Package normalizer turns raw life-list export text into the sorted,
// enveloped observation set consumed downstream.
package normalizer

import (
	"fmt"
	"strings"

	"lifelist/internal/models"
	"lifelist/internal/parser"
)

// Processor runs the full row pipeline: tokenize, extract, normalize,
// drop malformed rows, sort, envelope.
type Processor struct {
	parser      *parser.Parser
	transformer *Transformer
	validator   *Validator
}

// NewProcessor creates a new processor instance with no envelope
// validation rules attached.
func NewProcessor() *Processor {
	return &Processor{
		parser:      parser.NewParser(),
		transformer: NewTransformer(),
	}
}

// NewProcessorWithValidator creates a processor that checks the
// produced envelope against the given validator.
func NewProcessorWithValidator(v *Validator) *Processor {
	p := NewProcessor()
	p.validator = v

	return p
}

// Process converts one raw export into an output envelope.
//
// Row 0 is always the export's column header and is skipped regardless
// of content. Every later non-blank row is fed to the row parser;
// malformed rows are dropped silently and never abort the run. Any
// input, however malformed, yields a valid (possibly empty) envelope.
func (p *Processor) Process(rawText string) (*models.Export, error) {
	return p.ProcessMany([]string{rawText})
}

// ProcessMany merges several raw exports into one envelope. Each
// export's own header row is skipped; the combined set is sorted once.
func (p *Processor) ProcessMany(rawTexts []string) (*models.Export, error) {
	var observations []models.Observation

	for _, rawText := range rawTexts {
		observations = append(observations, p.parseRows(rawText)...)
	}

	export := p.transformer.Transform(observations)

	if p.validator != nil {
		if err := p.validator.Validate(export); err != nil {
			return nil, fmt.Errorf("envelope validation failed: %w", err)
		}
	}

	return export, nil
}

// parseRows extracts the observations from one export's rows, skipping
// the header and dropping rows the parser rejects.
func (p *Processor) parseRows(rawText string) []models.Observation {
	var observations []models.Observation

	lines := strings.Split(rawText, "\n")

	for i, line := range lines {
		// First row is the column header, whatever it says.
		if i == 0 {
			continue
		}

		obs, err := p.parser.ParseRow(line)
		if err != nil {
			continue
		}

		observations = append(observations, *obs)
	}

	return observations
}
