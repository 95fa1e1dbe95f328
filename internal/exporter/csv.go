package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"balancetecli/internal/config"
	"balancetecli/internal/dataprocessing"
	"balancetecli/internal/errors"
)

// CSVWriter writes observations as a long-format CSV.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance. A nil logger falls back
// to the default slog logger.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteObservations writes the observations to path: UTF-8 BOM, fixed
// header, one record per observation in the order given. The data is
// written to a temp file in the destination directory first and renamed
// over path, so either the complete file appears or nothing changes.
func (w *CSVWriter) WriteObservations(path string, observations []dataprocessing.Observation) error {
	w.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(observations)))

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewWriteError(path, err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	// BOM helps Excel and Looker Studio recognize UTF-8
	if _, err := tmp.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return errors.NewWriteError(path, err)
	}

	writer := csv.NewWriter(tmp)
	if err := writer.Write(config.OutputHeader); err != nil {
		return errors.NewWriteError(path, fmt.Errorf("failed to write header: %w", err))
	}
	for _, obs := range observations {
		if err := writer.Write(formatObservation(obs)); err != nil {
			return errors.NewWriteError(path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewWriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewWriteError(path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.NewWriteError(path, err)
	}
	return nil
}
