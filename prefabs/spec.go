package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	CameraFile = "camera.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec is a [x, y, z] triple.
type Vec3Spec [3]float64

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

type MovementSpec struct {
	Speed        float64 `yaml:"speed"`
	Acceleration float64 `yaml:"acceleration"`
	Sensitivity  float64 `yaml:"sensitivity"`
	Pitch        float64 `yaml:"pitch"`
	Yaw          float64 `yaml:"yaw"`
}

type BodySpec struct {
	Radius       float64 `yaml:"radius"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Restitution  float64 `yaml:"restitution"`
	LockRotation bool    `yaml:"lock_rotation"`
}

type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Spawn    Vec3Spec     `yaml:"spawn"`
	Movement MovementSpec `yaml:"movement"`
	Body     BodySpec     `yaml:"body"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if spec.Body.Radius <= 0 {
		return nil, fmt.Errorf("prefabs: %s: body radius must be positive", PlayerFile)
	}
	return &spec, nil
}

type CameraSpec struct {
	Name string `yaml:"name"`
	// Offset is relative to the owning actor.
	Offset Vec3Spec `yaml:"offset"`
	// Tilt rotates the camera about -X, in degrees, until the first look
	// update overwrites it.
	Tilt float64 `yaml:"tilt"`
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
