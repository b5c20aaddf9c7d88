// Package integrity checks a dataset export before it is used.
//
// # Checks Provided
//
//   - Structure: the export contains the ExcelOutput and TextMap directories.
//   - Tables: which catalogued tables have a file. Absent tables are reported but do not
//     fail the run, since older exports legitimately lack newer tables.
//   - References: every entity with foreign keys is resolved and each key forced. Keys
//     that point nowhere and are not allow-listed become findings (kind, id, table,
//     field, key). The walk continues past broken entities.
//
// A malformed table aborts the run: nothing past it can be trusted.
//
// The `datamine check` command prints the Report as JSON.
package integrity
