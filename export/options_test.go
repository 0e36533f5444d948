package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsResolvedDefaults(t *testing.T) {
	var o *Options
	r := o.resolved()
	assert.Equal(t, defaultKinds, r.ObjectKinds)
	assert.Equal(t, mgl64.Ident4(), *r.GlobalMatrix)
	assert.Equal(t, 1.0, r.GlobalScale)
	assert.Equal(t, defaultCreator, r.Creator)
	assert.NotNil(t, r.Logger)
}

func TestOptionsScaleFromMatrix(t *testing.T) {
	m := mgl64.Scale3D(2, 2, 2)
	r := (&Options{GlobalMatrix: &m}).resolved()
	assert.InDelta(t, 2.0, r.GlobalScale, 1e-12)
}

func TestMedianScale(t *testing.T) {
	assert.InDelta(t, 1.0, medianScale(mgl64.Ident4()), 1e-12)
	assert.InDelta(t, 3.0, medianScale(mgl64.Scale3D(2, 3, 100)), 1e-12)
	// a degenerate matrix falls back to 1.0
	assert.Equal(t, 1.0, medianScale(mgl64.Mat4{}))
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unity.yaml")
	data := []byte("name: unity3d\nobject_types: [ARMATURE, EMPTY, MESH]\nglobal_scale: 1.0\nrotation_x: -90\ncreator: test\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	p, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, "unity3d", p.Name)
	assert.Equal(t, -90.0, p.RotationX)

	o := p.Options()
	assert.Equal(t, []ObjectKind{KindArmature, KindEmpty, KindMesh}, o.ObjectKinds)
	assert.Equal(t, "test", o.Creator)
	require.NotNil(t, o.GlobalMatrix)

	// -90 around X maps +Y to -Z
	v := mgl64.TransformCoordinate(mgl64.Vec3{0, 1, 0}, *o.GlobalMatrix)
	assert.InDelta(t, 0.0, v.Y(), 1e-9)
	assert.InDelta(t, -1.0, v.Z(), 1e-9)
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPresetUnity3D(t *testing.T) {
	o := PresetUnity3D().Options()
	assert.Equal(t, []ObjectKind{KindArmature, KindEmpty, KindMesh}, o.ObjectKinds)
	assert.Equal(t, 1.0, o.GlobalScale)
	require.NotNil(t, o.GlobalMatrix)
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, 180.0, degrees(3.141592653589793), 1e-9)
}
