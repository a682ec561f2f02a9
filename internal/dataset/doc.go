// Package dataset provides tolerant ingestion for the nutrition dataset.
//
// The package contains three stages:
//
// Load/Parse: reads a delimited dataset into a Table, stripping a UTF-8 BOM
// and padding ragged rows so short rows surface as missing values.
//
// CleanNumeric: mean-imputation over numeric columns. Missing cells are
// replaced by the column's mean over non-missing values, which leaves the
// column mean unchanged.
//
// Resolve/Records: maps semantic fields (diet type, recipe name, cuisine
// type, protein, carbs, fat) to concrete columns via a list of accepted
// header spellings, then extracts typed Record rows. Resolution failure is
// fatal for the whole run and reports every detected header for diagnosis.
package dataset
