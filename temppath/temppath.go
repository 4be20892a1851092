// Package temppath generates collision-resistant file and directory paths
// for scratch artifacts: structured-output capture files, per-run data
// directories, debug dumps.
//
// Path construction only. Nothing here touches the filesystem: the working
// directory is not validated, nothing is created, and cleanup is the
// caller's responsibility. Uniqueness is probabilistic, backed by a random
// 128-bit identifier rendered as hex.
package temppath

import (
	"encoding/hex"
	"path/filepath"

	"github.com/google/uuid"
)

// hex length of a short identifier. Shorter paths are easier to scan in
// logs; the raised collision odds are acceptable for per-run directories.
const shortIDLen = 8

// OutputFilePath returns a unique file path of the form
// workingDir/prefix_<32 hex chars><extension>. The extension must include
// its leading dot if one is wanted.
func OutputFilePath(workingDir, prefix, extension string) string {
	return filepath.Join(workingDir, prefix+"_"+newHexID(false)+extension)
}

// TempDirectoryPath returns a unique directory path of the form
// workingDir/prefix_<id>, where the id is 8 hex chars when shortID is set
// and 32 otherwise.
func TempDirectoryPath(workingDir, prefix string, shortID bool) string {
	return filepath.Join(workingDir, prefix+"_"+newHexID(shortID))
}

func newHexID(short bool) string {
	id := uuid.New()
	s := hex.EncodeToString(id[:])
	if short {
		return s[:shortIDLen]
	}
	return s
}
