package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Name labels an entity for lookups and debug output.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
