// Package main provides the unified worker command that reads downloaded
// life-list exports, normalizes them, and writes the output envelope.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"lifelist/internal/config"
	"lifelist/internal/logger"
	"lifelist/internal/normalizer"
	"lifelist/internal/writer"
)

func main() {
	// 1. Define Command-Line Flags
	// ---------------------------
	configFile := flag.String("config", "configs/worker.yaml", "Path to YAML configuration file")
	inputFile := flag.String("input", "", "Single export file (overrides configured sources)")
	outputFile := flag.String("output", "", "Output path (overrides configured output.path)")

	flag.Parse()

	// 2. Load Configuration
	// ---------------------
	cfg, err := loadConfig(*configFile, *inputFile, *outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Worker.Logging.Level).With("run_id", uuid.NewString())

	log.Info("🚀 Starting Life-List Worker Pipeline")
	log.Info(fmt.Sprintf("📍 Sources: %d enabled", len(cfg.GetEnabledSources())))
	log.Info(fmt.Sprintf("🎯 Output: %s (%s)", cfg.Worker.Output.Path, cfg.Worker.Output.Format))

	startTime := time.Now()

	// 3. Ingestion (Read Exports)
	// ---------------------------
	log.Info("Phase 1: Ingestion (Reading exports)...")

	var rawExports []string

	for _, src := range cfg.GetEnabledSources() {
		content, size, duration, readErr := normalizer.ReadExportWithMetrics(src.File)
		if readErr != nil {
			log.Error(fmt.Sprintf("❌ Failed to read source %q: %v", src.Name, readErr))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("✅ Read %s (%d bytes in %v)", src.File, size, duration))
		rawExports = append(rawExports, content)
	}

	// 4. Processing (Normalization)
	// -----------------------------
	log.Info("Phase 2: Processing (Parsing & Normalization)...")

	processStart := time.Now()

	validator := normalizer.NewValidator()
	validator.MaxObservations = cfg.Worker.Validation.MaxObservations
	validator.RequireRegion = cfg.Worker.Validation.RequireRegion

	processor := normalizer.NewProcessorWithValidator(validator)

	export, err := processor.ProcessMany(rawExports)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Normalization failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Normalized %d observations in %v", len(export.Observations), time.Since(processStart)))

	// 5. Output (Writer)
	// ------------------
	log.Info("Phase 3: Output (Writing envelope)...")

	if err := writer.Write(export, cfg.Worker.Output); err != nil {
		log.Error(fmt.Sprintf("❌ Write failed: %v", err))
		os.Exit(1)
	}

	// 6. Final Report
	// ---------------
	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Sources Read: %d\n", len(rawExports))
	fmt.Printf("Observations: %d\n", len(export.Observations))

	if len(export.Observations) > 0 {
		fmt.Printf("Date Range: %s .. %s\n",
			export.Observations[0].Date,
			export.Observations[len(export.Observations)-1].Date,
		)
	}

	fmt.Printf("Output: %s\n", cfg.Worker.Output.Path)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}

// loadConfig loads the YAML config, or builds a minimal one when the
// worker is driven purely by -input/-output flags.
func loadConfig(configFile, inputFile, outputFile string) (*config.Config, error) {
	if inputFile != "" {
		cfg := &config.Config{
			Worker: config.WorkerConfig{
				Sources: []config.SourceConfig{
					{Name: "cli", File: inputFile, Enabled: true},
				},
				Output: config.OutputConfig{
					Path:        outputFile,
					Format:      "json",
					PrettyPrint: true,
				},
				Logging: config.LoggingConfig{Level: "info"},
			},
		}
		if cfg.Worker.Output.Path == "" {
			return nil, errors.New("-output is required when using -input")
		}

		return cfg, nil
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if outputFile != "" {
		cfg.Worker.Output.Path = outputFile
	}

	return cfg, nil
}
