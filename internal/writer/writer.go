// Package writer serializes output envelopes to disk.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"lifelist/internal/config"
	"lifelist/internal/models"
)

// Write serializes the envelope according to the output config.
//
// Format "json" writes the whole envelope as one document (indented
// when pretty_print is set). Format "jsonl" writes a metadata line
// first (profile and exportedAt), then one observation per line.
// With create_backup an existing output file is renamed to <path>.bak
// before being replaced; with gzip the stream is gzip-compressed.
func Write(export *models.Export, cfg config.OutputConfig) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cfg.CreateBackup {
		if _, err := os.Stat(cfg.Path); err == nil {
			if err := os.Rename(cfg.Path, cfg.Path+".bak"); err != nil {
				return fmt.Errorf("failed to back up previous output: %w", err)
			}
		}
	}

	file, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var out io.Writer = file

	var gz *gzip.Writer

	if cfg.Gzip {
		gz = gzip.NewWriter(file)
		out = gz
	}

	switch cfg.Format {
	case "jsonl":
		err = writeJSONL(out, export)
	default:
		err = writeJSON(out, export, cfg.PrettyPrint)
	}

	if err != nil {
		return err
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to flush gzip stream: %w", err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, export *models.Export, pretty bool) error {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(export, "", "  ")
	} else {
		data, err = json.Marshal(export)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write envelope: %w", err)
	}

	return nil
}

func writeJSONL(w io.Writer, export *models.Export) error {
	enc := json.NewEncoder(w)

	meta := struct {
		Profile    models.Profile `json:"profile"`
		ExportedAt string         `json:"exportedAt"`
	}{
		Profile:    export.Profile,
		ExportedAt: export.ExportedAt,
	}

	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("failed to write metadata line: %w", err)
	}

	for i, obs := range export.Observations {
		if err := enc.Encode(obs); err != nil {
			return fmt.Errorf("failed to write observation %d: %w", i, err)
		}
	}

	return nil
}
