package checks

import (
	"datamine/core/excel"
	"datamine/core/storage"

	"github.com/go-git/go-billy/v5"
)

// TableStatus tells whether a catalogued table has a file in the export.
type TableStatus struct {
	Table   string `json:"table"`
	File    string `json:"file,omitempty"`
	Present bool   `json:"present"`
}

// CheckTables returns the status of every table in the catalog, sorted by name.
// File is the candidate that would be read.
func CheckTables(fs billy.Filesystem, catalog *excel.Catalog) []TableStatus {
	tables := catalog.Tables()
	out := make([]TableStatus, 0, len(tables))
	for _, t := range tables {
		st := TableStatus{Table: t.Name()}
		for _, f := range t.Files() {
			if storage.Exists(fs, storage.ExcelPath(f)) {
				st.File = f
				st.Present = true
				break
			}
		}
		out = append(out, st)
	}
	return out
}

// Missing filters the absent tables out of statuses.
func Missing(statuses []TableStatus) []string {
	var out []string
	for _, st := range statuses {
		if !st.Present {
			out = append(out, st.Table)
		}
	}
	return out
}
