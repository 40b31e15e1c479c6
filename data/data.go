// Package data ships the static resources a game is built from: letter
// distributions (letterdistributions/<name>.csv) and word lists
// (lexica/<name>.txt).
package data

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed letterdistributions lexica
var embedded embed.FS

const (
	LetterDistributionDir = "letterdistributions"
	LexicaDir             = "lexica"
)

// FS returns the filesystem data files are read from. An empty dataPath
// selects the embedded copy; anything else is a directory laid out the same
// way.
func FS(dataPath string) fs.FS {
	if dataPath == "" {
		return embedded
	}
	return os.DirFS(dataPath)
}
