package gpxdoc

import (
	"os"

	"github.com/google/renameio/v2"
)

const filePerm = 0644

// WriteFile stores data at path. When atomic is set, data goes to a temporary
// file in the same directory which then replaces path, so that path never
// holds a partial document.
func WriteFile(path string, data []byte, atomic bool) error {
	if atomic {
		return renameio.WriteFile(path, data, filePerm)
	}
	return os.WriteFile(path, data, filePerm)
}
