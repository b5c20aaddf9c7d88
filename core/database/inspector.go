package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Field      string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// GetTableColumns retrieves the column definitions for a given table, in declaration
// order. Unknown tables yield no columns.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type sqliteColumn struct {
		Cid       int
		Name      string
		Type      string
		Notnull   int
		DfltValue *string
		Pk        int
	}

	var rows []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, col := range rows {
		columns = append(columns, ColumnInfo{
			Field:      strings.ToLower(col.Name),
			Type:       strings.ToLower(col.Type),
			NotNull:    col.Notnull != 0,
			PrimaryKey: col.Pk != 0,
		})
	}
	return columns, nil
}

// CountRows returns the number of rows in a table.
func CountRows(db *gorm.DB, tableName string) (int64, error) {
	var n int64
	if err := db.Table(tableName).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows of table %s: %w", tableName, err)
	}
	return n, nil
}
