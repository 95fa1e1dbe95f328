package config

import (
	"path/filepath"
	"strings"
)

// OutputPath derives the output file path from the input file path by
// inserting OutputSuffix before the extension. The output is always a CSV
// regardless of the input format, so "balancete.xlsx" becomes
// "balancete_optimized.csv".
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + OutputSuffix + ".csv"
}
