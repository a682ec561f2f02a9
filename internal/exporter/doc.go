// Package exporter writes the computed tables to disk.
//
// JSONWriter produces indented JSON artifacts (the remote job's results
// file and the aggregate export). WorkbookWriter produces an XLSX workbook
// with one sheet per table. Both create parent directories on demand.
package exporter
