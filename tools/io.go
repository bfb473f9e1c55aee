package tools

import (
	"os"
	"path/filepath"
	"strings"
)

func CreateDirectoryIfDoesNotExist(directory string) error {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		err := os.MkdirAll(directory, 0777)
		if err != nil {
			return err
		}
	}
	return nil
}

// Returns the base name of the file without its extension. A trailing .gz is removed first, so
// "scene.obj.gz" gives "scene".
func GetFilenameWithoutExtension(filePath string) string {
	nameWext := filepath.Base(filePath)
	if strings.HasSuffix(strings.ToLower(nameWext), ".gz") {
		nameWext = nameWext[:len(nameWext)-len(".gz")]
	}
	extension := filepath.Ext(nameWext)
	return nameWext[0 : len(nameWext)-len(extension)]
}
