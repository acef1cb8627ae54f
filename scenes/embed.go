package scenes

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

//go:embed *.scn
var ScenesFS embed.FS

// Scene is the static content instantiated when the world enters Main.
type Scene struct {
	Name         string  `yaml:"name"`
	GroundHeight float64 `yaml:"ground_height"`
	Walls        []Wall  `yaml:"walls"`
	Props        []Prop  `yaml:"props"`
}

// Wall is a vertical slab on the ground plane, from From to To.
type Wall struct {
	From      [2]float64 `yaml:"from"`
	To        [2]float64 `yaml:"to"`
	Thickness float64    `yaml:"thickness"`
}

// Prop is a named static cylinder standing on the ground.
type Prop struct {
	Name     string     `yaml:"name"`
	Position [3]float64 `yaml:"position"`
	Radius   float64    `yaml:"radius"`
}

func (p Prop) Translation() mgl64.Vec3 {
	return mgl64.Vec3{p.Position[0], p.Position[1], p.Position[2]}
}

// Decode parses a scene document.
func Decode(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	for i, w := range s.Walls {
		if w.From == w.To {
			return nil, fmt.Errorf("scene %q: wall %d has zero length", s.Name, i)
		}
		if w.Thickness < 0 {
			return nil, fmt.Errorf("scene %q: wall %d has negative thickness", s.Name, i)
		}
	}
	for i, p := range s.Props {
		if p.Radius <= 0 {
			return nil, fmt.Errorf("scene %q: prop %d (%s) needs a positive radius", s.Name, i, p.Name)
		}
	}
	return &s, nil
}

// ReadFile reads name from dir on disk when present, falling back to the
// embedded copy. name may carry a leading "scenes/".
func ReadFile(dir, name string) ([]byte, error) {
	clean := cleanScenePath(name)
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, "scenes", filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	data, err := fs.ReadFile(ScenesFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", name, err)
	}
	return data, nil
}

func cleanScenePath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "scenes/"); ok {
		return after
	}
	return s
}
