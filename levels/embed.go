package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data
var LevelsFS embed.FS

// ReadAsset returns a file from the level data directory, preferring an
// on-disk copy during development.
func ReadAsset(name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !strings.HasPrefix(s, "data/") {
		s = "data/" + s
	}
	return s
}
