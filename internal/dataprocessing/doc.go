// Package dataprocessing implements the wide-to-long transformation of Tiny
// ERP balancete exports.
//
// # Architecture
//
// The package is organized into four components:
//
//  1. Validator: gates malformed input before any transformation
//  2. Date parser: decodes "Mon/YY" column headers into (month, year)
//  3. Reshaper: turns each (row, date column) pair into one Observation
//  4. Summarizer: aggregates the reshaped output for the completion log
//
// # Data Flow
//
//	Table → Validate → Reshape → []Observation → Summarize
//
// The input table is fully in memory; this is a short-lived batch transform,
// not a streaming system.
//
// # Error Handling
//
// Schema violations and unknown month abbreviations abort the run with coded
// errors from balancetecli/internal/errors. Unparseable cell values do not:
// they normalize to 0.00 so every (row, month) pair appears in the output.
package dataprocessing
