package fbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate(users int) *Template {
	defaults := []TemplateProp{
		{"Color", PropColorRGB, [3]float64{0.8, 0.8, 0.8}},
		{"Camera Index", PropInteger, 1},
		{"Show", PropBool, true},
		{"DefaultAttributeIndex", PropInteger, -1},
	}
	return NewTemplate("NodeAttribute", "FbxCameraSwitcher", defaults, nil, users)
}

func TestTemplateSuppressesDefault(t *testing.T) {
	tmpl := testTemplate(1)
	props := NewElement("Properties70")

	p, err := tmpl.WriteIfChanged(props, PropInteger, "Camera Index", 1)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, props.Children)

	p, err = tmpl.WriteIfChanged(props, PropColorRGB, "Color", 0.8, 0.8, 0.8)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = tmpl.WriteIfChanged(props, PropInteger, "DefaultAttributeIndex", -1)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = tmpl.WriteIfChanged(props, PropBool, "Show", true)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, props.Children)
}

func TestTemplateWritesChangedValue(t *testing.T) {
	tmpl := testTemplate(1)
	props := NewElement("Properties70")

	p, err := tmpl.WriteIfChanged(props, PropInteger, "Camera Index", 100)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Len(t, props.Children, 1)

	want := NewElement("Properties70")
	wp, err := WriteProperty(want, PropInteger, "Camera Index", 100)
	require.NoError(t, err)
	assert.Equal(t, wp, p)
}

func TestTemplateKindMismatchWrites(t *testing.T) {
	tmpl := testTemplate(1)
	props := NewElement("Properties70")

	// same name and a numerically equal value, but a different kind is
	// never suppressed
	p, err := tmpl.WriteIfChanged(props, PropDouble, "Camera Index", 1.0)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Len(t, props.Children, 1)
}

func TestTemplateUnknownNameWrites(t *testing.T) {
	tmpl := testTemplate(1)
	props := NewElement("Properties70")
	p, err := tmpl.WriteIfChanged(props, PropDouble, "FilmWidth", 1.5)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNilTemplateAlwaysWrites(t *testing.T) {
	var tmpl *Template
	props := NewElement("Properties70")
	p, err := tmpl.WriteIfChanged(props, PropInteger, "Camera Index", 1)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Len(t, props.Children, 1)
}

func TestTemplateOverrides(t *testing.T) {
	defaults := []TemplateProp{
		{"Color", PropColorRGB, [3]float64{0.8, 0.8, 0.8}},
		{"Camera Index", PropInteger, 1},
	}
	overrides := []TemplateProp{
		{"Camera Index", PropInteger, 5},
		{"Extra", PropDouble, 2.5},
	}
	tmpl := NewTemplate("NodeAttribute", "FbxCameraSwitcher", defaults, overrides, 1)

	p, ok := tmpl.Get("Camera Index")
	require.True(t, ok)
	assert.Equal(t, 5, p.Value)

	p, ok = tmpl.Get("Extra")
	require.True(t, ok)
	assert.Equal(t, 2.5, p.Value)

	// override on an existing name keeps its original position
	defs := NewElement("Definitions")
	require.NoError(t, tmpl.Write(defs))
	props := defs.FindChild("ObjectType").FindChild("PropertyTemplate").FindChild("Properties70")
	require.Len(t, props.Children, 3)
	assert.Equal(t, "Color", props.Children[0].AttrString(0))
	assert.Equal(t, "Camera Index", props.Children[1].AttrString(0))
	assert.Equal(t, "Extra", props.Children[2].AttrString(0))
}

func TestTemplateWriteBlock(t *testing.T) {
	tmpl := testTemplate(3)
	defs := NewElement("Definitions")
	require.NoError(t, tmpl.Write(defs))

	ot := defs.FindChild("ObjectType")
	require.NotNil(t, ot)
	assert.Equal(t, "NodeAttribute", ot.AttrString(0))
	assert.Equal(t, int64(3), ot.FindChild("Count").AttrInt64(0))

	pt := ot.FindChild("PropertyTemplate")
	require.NotNil(t, pt)
	assert.Equal(t, "FbxCameraSwitcher", pt.AttrString(0))
	assert.Len(t, pt.FindChild("Properties70").Children, 4)
}

func TestModelTemplateWrites(t *testing.T) {
	defs := NewElement("Definitions")
	require.NoError(t, TemplateModel(nil, 1).Write(defs))

	props := defs.FindChild("ObjectType").FindChild("PropertyTemplate").FindChild("Properties70")
	require.NotNil(t, props)

	// object-reference defaults have no payload after the tag triple
	for _, name := range []string{"LookAtProperty", "UpVectorProperty"} {
		var found *Element
		for _, p := range props.Children {
			if p.AttrString(0) == name {
				found = p
				break
			}
		}
		require.NotNil(t, found, name)
		assert.Len(t, found.Attributes, 4)
		assert.Equal(t, "object", found.AttrString(1))
	}
}

func TestTemplateSuppressesObjectReferenceDefault(t *testing.T) {
	tmpl := TemplateModel(nil, 1)
	props := NewElement("Properties70")
	p, err := tmpl.WriteIfChanged(props, PropObject, "LookAtProperty")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, props.Children)
}

func TestTemplateWriteEmptyOmitsPropertyTemplate(t *testing.T) {
	tmpl := TemplateGlobalSettings(1)
	defs := NewElement("Definitions")
	require.NoError(t, tmpl.Write(defs))

	ot := defs.FindChild("ObjectType")
	require.NotNil(t, ot)
	assert.Equal(t, "GlobalSettings", ot.AttrString(0))
	assert.Equal(t, int64(1), ot.FindChild("Count").AttrInt64(0))
	assert.Nil(t, ot.FindChild("PropertyTemplate"))
}

func TestTemplateSet(t *testing.T) {
	set := &TemplateSet{}
	set.Add(TemplateGlobalSettings(1))
	set.Add(TemplateCameraSwitcher(nil, 2))
	set.Add(TemplateCamera(nil, 2))

	assert.Equal(t, 5, set.TotalUsers())
	assert.Len(t, set.Templates(), 3)

	sw := set.Find("NodeAttribute", "FbxCameraSwitcher")
	require.NotNil(t, sw)
	cam := set.Find("NodeAttribute", "FbxCamera")
	require.NotNil(t, cam)
	assert.NotSame(t, sw, cam)

	assert.Nil(t, set.Find("Model", "FbxNode"))
}

func TestCameraTemplateDefaults(t *testing.T) {
	tmpl := TemplateCamera(nil, 1)
	p, ok := tmpl.Get("FilmWidth")
	require.True(t, ok)
	assert.Equal(t, 0.816, p.Value)

	p, ok = tmpl.Get("UpVector")
	require.True(t, ok)
	assert.Equal(t, [3]float64{0, 1, 0}, p.Value)

	p, ok = tmpl.Get("NearPlane")
	require.True(t, ok)
	assert.Equal(t, 10.0, p.Value)
}
