// Package main provides the formatter command-line tool that renders a
// normalized life list as an aligned markdown table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"lifelist/internal/formatter"
	"lifelist/internal/models"
)

func main() {
	inputPath := flag.String("input", "", "Path to normalized JSON file (.json or .json.gz)")
	outputPath := flag.String("output", "", "Write table to file instead of stdout")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: formatter -input <lifelist.json> [-output <table.md>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	export, err := readExportFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading input: %v\n", err)
	}

	table := formatter.FormatTable(export.Observations)

	header := fmt.Sprintf("Life list: %d observations (synced %s)\n\n",
		len(export.Observations), export.Profile.LastSync)

	if *outputPath == "" {
		fmt.Print(header + table)

		return
	}

	if err := os.WriteFile(*outputPath, []byte(header+table), 0644); err != nil {
		log.Fatalf("Error writing table: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}

// readExportFile loads a normalized envelope, transparently handling
// gzip-compressed output files.
func readExportFile(path string) (*models.Export, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(path, ".gz") {
		gz, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", gzErr)
		}
		defer gz.Close()

		reader = gz
	}

	var export models.Export
	if err := json.NewDecoder(reader).Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}

	return &export, nil
}
