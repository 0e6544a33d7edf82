package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteSnapshot marshals one fetched collection into the export dir.
func WriteSnapshot(exportDir, name string, v any) (string, error) {
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return "", fmt.Errorf("❌ Failed to create export directory %s: %w", exportDir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("❌ Failed to convert %s to JSON: %w", name, err)
	}

	filePath := filepath.Join(exportDir, name+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("❌ Failed to write %s: %w", filePath, err)
	}

	return filePath, nil
}

// GenerateMetadata - collect the export files and their modification times
func GenerateMetadata(dir string) (map[string]string, error) {
	metadata := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}

		metadata[relPath] = info.ModTime().Format(time.RFC3339)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("❌ Failed to scan directory: %w", err)
	}

	return metadata, nil
}

// SaveMetadata - write metadata.json next to the snapshots
func SaveMetadata(metadataPath string, metadata map[string]string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to marshal metadata.json: %w", err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write metadata.json: %w", err)
	}

	return nil
}
