// helpers.go holds the output helpers shared by the CLI commands.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// humanSize renders a byte count with a binary-unit suffix.
func humanSize(n int) string {
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[i])
}

// writeFile writes one extracted attachment under outDir, refusing names
// that would resolve outside it.
func writeFile(outDir, name string, data []byte) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(outDir, name)
	rel, err := filepath.Rel(outDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("refusing to write outside %s: %q", outDir, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write attachment %s: %w", name, err)
	}
	fmt.Printf("Wrote %s (%s)\n", path, humanSize(len(data)))
	return nil
}
