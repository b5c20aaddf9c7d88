package checks

import (
	"datamine/core/storage"

	"github.com/go-git/go-billy/v5"
)

// RequiredFolders lists the directories a dataset export must contain.
var RequiredFolders = []string{
	storage.ExcelDir,
	storage.TextDir,
}

// CheckStructure returns the required folders missing from fs.
func CheckStructure(fs billy.Filesystem) []string {
	var missing []string
	for _, dir := range RequiredFolders {
		info, err := fs.Stat(dir)
		if err != nil || !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	return missing
}
