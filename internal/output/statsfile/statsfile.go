// Package statsfile writes the per-run statistics report as indented JSON.
package statsfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adiwarna/sieve/internal/engine/stats"
)

// Write marshals the report to path, creating parent directories as needed.
func Write(path string, report stats.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("stats output: mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("stats output: marshal: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("stats output: write %s: %w", path, err)
	}
	return nil
}
