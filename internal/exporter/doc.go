// Package exporter writes the long-format observations to a UTF-8 CSV with
// a byte-order mark, the encoding Looker Studio and Excel both accept. The
// file is staged through a temp file and renamed into place so a failed run
// never leaves a partial output behind.
package exporter
