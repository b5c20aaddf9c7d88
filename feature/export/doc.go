// Package export flattens resolved views into records and writes them to a SQLite
// snapshot database.
//
// Building a record forces every reference it prints, so an export doubles as a full
// reference check of the exported kinds: a dangling id aborts the export with the
// *excel.ReferenceError naming it.
//
// # Tables
//
//   - avatars, equipment, items, missions, challenge_floors, monsters: replaced on
//     every run.
//   - export_runs: one row appended per run.
//
// Lookup builds a single record without touching the database; the show command
// prints it as JSON.
package export
