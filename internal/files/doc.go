// Package files reads Tiny ERP balancete exports into an in-memory table.
// CSV is the primary format; XLSX workbooks are accepted too since Tiny ERP
// offers both. The whole file is read up front, there is no streaming.
package files
