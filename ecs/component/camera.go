package component

// Camera is a perspective camera. FOV is in degrees.
type Camera struct {
	FOV  float64
	Near float64
	Far  float64
}

var CameraComponent = NewComponent[Camera]()
