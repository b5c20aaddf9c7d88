// Package excel implements the table store: loading, decoding and memoizing the
// ExcelOutput tables of a dataset export, and computing derived indices over them.
//
// # Declaring tables
//
// Tables are declared once, at package level, by the feature package that owns the row
// type. Declarations register themselves in DefaultCatalog so that the whole dataset can be
// preloaded or checked without a hand-written list:
//
//	var AvatarConfig = excel.NewTable[uint32, AvatarRow]("AvatarConfig")
//	var MazeBuff = excel.NewGroupTable[uint32, uint32, BuffRow]("MazeBuff")
//
// Fallback names cover tables renamed between game versions; the first file present wins.
//
// # Layouts
//
// Two on-disk layouts exist for the same logical table. The loader tries the current one
// first and falls back to the legacy one, logging the fallback:
//
//	[{"ID": 100, "Lv": 1}]             current: array of rows, keys read from the rows
//	{"100": {"ID": 100, "Lv": 1}}      legacy point table, keys read from the object
//	{"100": {"1": {"ID": 100, ...}}}   legacy main/sub table
//
// A missing file yields an empty table. A file matching neither layout, or a duplicate
// key, is fatal and reported as a *TableError.
//
// # Laziness and concurrency
//
// Every table and derived index lives in its own compute-once cell (core/lazy). Loading
// table A never blocks readers of table B, concurrent first readers of one table share a
// single load, and loaded tables are read without locks.
//
// # Derived indices
//
//   - UnionDef concatenates same-typed tables (e.g. the per-mode copies of one concept).
//   - GroupByDef partitions rows by a nonzero foreign-key field.
//   - NameIndexDef maps resolved display names back to rows.
package excel
