package common

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// OutputPathFor derives the JSON output path for a source document:
// the input's base name with a .json extension, placed in outputDir.
func OutputPathFor(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, name+".json")
}

// IsPDF reports whether the filename has a .pdf extension, case-insensitive.
func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}
