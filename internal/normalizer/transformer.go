package normalizer

import (
	"sort"
	"time"

	"lifelist/internal/models"
)

// Transformer wraps a parsed observation set in the output envelope.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform sorts the observations ascending by date and builds the
// envelope around them.
//
// Normalized dates are ISO strings, so lexical comparison is
// chronological; the stable sort keeps input order for same-day ties.
// LastSync and ExportedAt are two separate clock reads, lastSync first.
func (t *Transformer) Transform(observations []models.Observation) *models.Export {
	// Serialize an empty run as [], not null.
	if observations == nil {
		observations = []models.Observation{}
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Date < observations[j].Date
	})

	export := &models.Export{
		Profile: models.Profile{
			LastSync: time.Now().Format(time.RFC3339),
		},
		Observations: observations,
	}
	export.ExportedAt = time.Now().Format(time.RFC3339)

	return export
}
