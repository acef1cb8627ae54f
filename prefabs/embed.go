package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory whose files take precedence over the embedded
// copies, so edits can be picked up without rebuilding.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/prefabs/"); idx >= 0 {
		return s[idx+len("/prefabs/"):]
	}
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
