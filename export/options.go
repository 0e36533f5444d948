package export

import (
	"math"
	"os"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

var defaultKinds = []ObjectKind{KindEmpty, KindCamera, KindLight, KindArmature, KindMesh}

// Options control one export call. The zero value exports all default
// object kinds with an identity transform and a wall-clock timestamp.
type Options struct {
	// ObjectKinds filters which scene object kinds are exported.
	ObjectKinds []ObjectKind
	// GlobalMatrix is applied conceptually upstream: the axis and unit
	// convention written to GlobalSettings never changes, any remapping
	// happens through this transform.
	GlobalMatrix *mgl64.Mat4
	// GlobalScale overrides the scale derived from GlobalMatrix.
	GlobalScale float64
	// Creator is the creator string written to the header.
	Creator string
	// CreationTime pins the header timestamp. Exports with the same
	// scene and time are byte-identical.
	CreationTime *time.Time
	Logger       *zap.Logger
}

const defaultCreator = "fbxexport (github.com/meshtools/fbxexport)"

func (o *Options) resolved() Options {
	var r Options
	if o != nil {
		r = *o
	}
	if r.ObjectKinds == nil {
		r.ObjectKinds = defaultKinds
	}
	if r.GlobalMatrix == nil {
		m := mgl64.Ident4()
		r.GlobalMatrix = &m
	}
	if r.GlobalScale == 0 {
		r.GlobalScale = medianScale(*r.GlobalMatrix)
	}
	if r.Creator == "" {
		r.Creator = defaultCreator
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return r
}

// medianScale is the median of the basis vector lengths, the scale a
// mostly-uniform transform applies.
func medianScale(m mgl64.Mat4) float64 {
	s := []float64{
		m.Col(0).Vec3().Len(),
		m.Col(1).Vec3().Len(),
		m.Col(2).Vec3().Len(),
	}
	sort.Float64s(s)
	if s[1] == 0 {
		return 1.0
	}
	return s[1]
}

// Preset is a named option bundle for a target application, loadable
// from a yaml file.
type Preset struct {
	Name        string   `yaml:"name"`
	ObjectTypes []string `yaml:"object_types"`
	GlobalScale float64  `yaml:"global_scale"`
	// RotationX is a rotation in degrees around the X axis folded into
	// the global matrix, the usual axis fixup between tools.
	RotationX float64 `yaml:"rotation_x"`
	Creator   string  `yaml:"creator"`
}

// LoadPreset reads a yaml preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "export: preset %q", path)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "export: preset %q", path)
	}
	return &p, nil
}

// PresetUnity3D matches the conventions the Unity importer expects.
func PresetUnity3D() *Preset {
	return &Preset{
		Name:        "unity3d",
		ObjectTypes: []string{string(KindArmature), string(KindEmpty), string(KindMesh)},
		GlobalScale: 1.0,
		RotationX:   -90,
	}
}

// Options expands the preset into export options.
func (p *Preset) Options() Options {
	var o Options
	for _, t := range p.ObjectTypes {
		o.ObjectKinds = append(o.ObjectKinds, ObjectKind(t))
	}
	if p.RotationX != 0 {
		m := mgl64.HomogRotate3DX(mgl64.DegToRad(p.RotationX))
		o.GlobalMatrix = &m
	}
	o.GlobalScale = p.GlobalScale
	o.Creator = p.Creator
	return o
}

// degrees converts radians for the FBX angle fields.
func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
