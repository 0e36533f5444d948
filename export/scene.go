package export

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ObjectKind tags a scene object with the host's object type.
type ObjectKind string

const (
	KindEmpty    ObjectKind = "EMPTY"
	KindMesh     ObjectKind = "MESH"
	KindCamera   ObjectKind = "CAMERA"
	KindLight    ObjectKind = "LIGHT"
	KindArmature ObjectKind = "ARMATURE"
)

// Scene is the host-resolved view of a scene: a named, ordered list of
// object stubs. The exporter never mutates it and walks it exactly
// once.
type Scene struct {
	Name    string
	Objects []*Object
}

// Object is one typed scene object stub. Kind-specific data hangs off
// the matching pointer field; an object whose kind-specific data is
// missing is skipped by the exporter.
type Object struct {
	Name   string
	Kind   ObjectKind
	Matrix mgl64.Mat4 // world transform
	Parent *Object

	Camera *Camera // when Kind == KindCamera
	Mesh   *Mesh   // when Kind == KindMesh
}

// Key is the registry key correlating this object's records across the
// document.
func (o *Object) Key() string {
	return "Object::" + o.Name
}

// Camera carries the sensor parameters of a camera data block.
// Sensor sizes are millimeters, the view angle is radians, clip
// distances are scene units.
type Camera struct {
	Name         string
	SensorWidth  float64
	SensorHeight float64
	AngleX       float64
	ShiftX       float64
	ShiftY       float64
	ClipStart    float64
	ClipEnd      float64
}

func (c *Camera) Key() string {
	return "Camera::" + c.Name
}

// SwitcherKey is the key of the selector record every camera is paired
// with.
func (c *Camera) SwitcherKey() string {
	return "CameraSwitcher::" + c.Name
}

// Mesh is a mesh data block. Data blocks may be shared by several
// objects; the exporter deduplicates them by identity.
type Mesh struct {
	Name     string
	Vertices []mgl64.Vec3
	Faces    [][]int
}

func (m *Mesh) Key() string {
	return "Geometry::" + m.Name
}
