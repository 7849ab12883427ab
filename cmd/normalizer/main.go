// Package main provides the normalizer command-line tool for one-shot
// export-to-JSON conversion.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"lifelist/internal/normalizer"
)

func main() {
	inputPath := flag.String("input", "", "Path to downloaded export file (e.g., lifelist.csv)")
	outputPath := flag.String("output", "", "Path to output JSON file")
	pretty := flag.Bool("pretty", true, "Indent the JSON output")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalizer -input <export.csv> -output <lifelist.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := normalizer.ReadExport(*inputPath)
	if err != nil {
		log.Fatalf("Error reading export: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(content))

	processor := normalizer.NewProcessor()

	export, err := processor.Process(content)
	if err != nil {
		log.Fatalf("Error normalizing export: %v\n", err)
	}

	fmt.Printf("📊 Normalized: %d observations\n", len(export.Observations))

	if mkdirErr := os.MkdirAll(filepath.Dir(*outputPath), 0755); mkdirErr != nil {
		log.Fatalf("Error creating directory: %v\n", mkdirErr)
	}

	var jsonData []byte
	if *pretty {
		jsonData, err = json.MarshalIndent(export, "", "  ")
	} else {
		jsonData, err = json.Marshal(export)
	}

	if err != nil {
		log.Fatalf("Error marshaling JSON: %v\n", err)
	}

	if err := os.WriteFile(*outputPath, jsonData, 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
