package converter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"

	"github.com/meshtools/fbxexport/export"
)

// Default film back when the source has no aspect information, in
// millimeters.
const (
	defaultSensorWidth  = 36.0
	defaultSensorHeight = 24.0
	defaultClipEnd      = 100.0
)

type GLTFToSceneOption struct {
	// SceneName overrides the glTF scene name.
	SceneName string
}

type gltfToScene struct {
	options *GLTFToSceneOption
}

func NewGLTFToSceneConverter(options *GLTFToSceneOption) *gltfToScene {
	if options == nil {
		options = &GLTFToSceneOption{}
	}
	return &gltfToScene{options: options}
}

func nodeMatrix(n *gltf.Node) mgl64.Mat4 {
	if m := n.MatrixOrDefault(); m != gltf.DefaultMatrix {
		var out mgl64.Mat4
		for i, v := range m {
			out[i] = float64(v)
		}
		return out
	}
	tr := n.TranslationOrDefault()
	rot := n.RotationOrDefault()
	sc := n.ScaleOrDefault()
	t := mgl64.Translate3D(float64(tr[0]), float64(tr[1]), float64(tr[2]))
	q := mgl64.Quat{
		W: float64(rot[3]),
		V: mgl64.Vec3{float64(rot[0]), float64(rot[1]), float64(rot[2])},
	}
	s := mgl64.Scale3D(float64(sc[0]), float64(sc[1]), float64(sc[2]))
	return t.Mul4(q.Normalize().Mat4()).Mul4(s)
}

func (c *gltfToScene) convertCamera(src *gltf.Camera) *export.Camera {
	cam := &export.Camera{
		Name:         src.Name,
		SensorWidth:  defaultSensorWidth,
		SensorHeight: defaultSensorHeight,
		ClipEnd:      defaultClipEnd,
	}
	if p := src.Perspective; p != nil {
		aspect := defaultSensorWidth / defaultSensorHeight
		if p.AspectRatio != nil && *p.AspectRatio > 0 {
			aspect = float64(*p.AspectRatio)
		}
		cam.AngleX = 2 * math.Atan(math.Tan(float64(p.Yfov)/2)*aspect)
		cam.ClipStart = float64(p.Znear)
		if p.Zfar != nil {
			cam.ClipEnd = float64(*p.Zfar)
		}
	}
	return cam
}

func (c *gltfToScene) convertNode(src *gltf.Document, scene *export.Scene, idx uint32, parent *export.Object, parentMatrix mgl64.Mat4) {
	n := src.Nodes[idx]
	world := parentMatrix.Mul4(nodeMatrix(n))

	obj := &export.Object{
		Name:   n.Name,
		Kind:   export.KindEmpty,
		Matrix: world,
		Parent: parent,
	}
	switch {
	case n.Camera != nil:
		obj.Kind = export.KindCamera
		obj.Camera = c.convertCamera(src.Cameras[*n.Camera])
		if obj.Camera.Name == "" {
			obj.Camera.Name = n.Name
		}
	case n.Mesh != nil:
		obj.Kind = export.KindMesh
		obj.Mesh = &export.Mesh{Name: src.Meshes[*n.Mesh].Name}
		if obj.Mesh.Name == "" {
			obj.Mesh.Name = n.Name
		}
	}
	scene.Objects = append(scene.Objects, obj)

	for _, child := range n.Children {
		c.convertNode(src, scene, child, obj, world)
	}
}

// Convert builds an export scene view from a glTF document. Geometry
// payloads are not extracted; the scene view only needs the object
// population and transforms.
func (c *gltfToScene) Convert(src *gltf.Document) (*export.Scene, error) {
	scene := &export.Scene{Name: c.options.SceneName}

	var roots []uint32
	if len(src.Scenes) > 0 {
		idx := uint32(0)
		if src.Scene != nil {
			idx = *src.Scene
		}
		if scene.Name == "" {
			scene.Name = src.Scenes[idx].Name
		}
		roots = src.Scenes[idx].Nodes
	}
	if scene.Name == "" {
		scene.Name = "Scene"
	}

	for _, idx := range roots {
		c.convertNode(src, scene, idx, nil, mgl64.Ident4())
	}
	return scene, nil
}
