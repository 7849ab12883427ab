package normalizer

import (
	"fmt"
	"os"
	"time"
)

// ReadExport reads a downloaded export file from disk. The acquisition
// step that produces the file (authenticated session, export trigger,
// download) lives outside this service; by the time we run, the export
// is a plain local file.
func ReadExport(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read export file %s: %w", filePath, err)
	}

	return string(content), nil
}

// ReadExportWithMetrics returns (content, fileSize, duration, error).
func ReadExportWithMetrics(filePath string) (string, int64, time.Duration, error) {
	startTime := time.Now()

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return "", 0, time.Since(startTime), fmt.Errorf("failed to stat export file %s: %w", filePath, err)
	}

	content, err := os.ReadFile(filePath)
	duration := time.Since(startTime)

	if err != nil {
		return "", 0, duration, fmt.Errorf("failed to read export file %s: %w", filePath, err)
	}

	return string(content), fileInfo.Size(), duration, nil
}
