// Package database opens the SQLite database that receives snapshot exports.
//
// Connections go through GORM with the gorm.io/driver/sqlite dialector bound to the
// pure-Go modernc.org/sqlite driver, so no cgo toolchain is needed.
//
// # Schema Inspection
//
// GetTableColumns and CountRows describe what an export wrote; the export summary is
// built from them.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "avatars")
package database
