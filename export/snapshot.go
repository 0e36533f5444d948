package export

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/meshtools/fbxexport/fbx"
)

// Snapshot is the single source of truth every section writer consumes.
// It is computed in one pass over the scene; no writer re-derives
// populations, which keeps the counts declared in Definitions and the
// records written to Objects consistent by construction.
type Snapshot struct {
	SceneName string

	// Objects are the exportable objects, input order preserved.
	Objects []*Object
	// Cameras are the camera objects with usable camera data, in
	// Objects order. Each contributes a camera and a camera switcher
	// node attribute.
	Cameras []*Object
	// Meshes are the unique mesh data blocks, first-seen order.
	Meshes []*Mesh

	GlobalMatrix mgl64.Mat4
	GlobalScale  float64
	Templates    *fbx.TemplateSet

	exported map[*Object]bool
}

// BuildSnapshot classifies the scene's objects and freezes the template
// user counts. Objects missing the data their kind requires are
// dropped here, before any count is declared, never mid-write.
func BuildSnapshot(scene *Scene, kinds []ObjectKind, globalMatrix mgl64.Mat4, globalScale float64, log *zap.Logger) *Snapshot {
	s := &Snapshot{
		SceneName:    scene.Name,
		GlobalMatrix: globalMatrix,
		GlobalScale:  globalScale,
		exported:     map[*Object]bool{},
	}

	kindSet := map[ObjectKind]bool{}
	for _, k := range kinds {
		kindSet[k] = true
	}

	seenMesh := map[*Mesh]bool{}
	for _, o := range scene.Objects {
		if !kindSet[o.Kind] {
			continue
		}
		switch o.Kind {
		case KindCamera:
			if o.Camera == nil {
				log.Warn("skipping camera object without camera data", zap.String("object", o.Name))
				continue
			}
		case KindMesh:
			if o.Mesh == nil {
				log.Warn("skipping mesh object without mesh data", zap.String("object", o.Name))
				continue
			}
		}
		s.Objects = append(s.Objects, o)
		s.exported[o] = true
		switch o.Kind {
		case KindCamera:
			s.Cameras = append(s.Cameras, o)
		case KindMesh:
			if !seenMesh[o.Mesh] {
				seenMesh[o.Mesh] = true
				s.Meshes = append(s.Meshes, o.Mesh)
			}
		}
	}

	s.Templates = buildTemplates(s)
	return s
}

// Contains reports whether o made it into the exported set. Camera
// transforms are parent-relative only when the parent is exported too.
func (s *Snapshot) Contains(o *Object) bool {
	return s.exported[o]
}

// buildTemplates registers one template per class that will have
// instances. GlobalSettings always has exactly one user: the scene.
func buildTemplates(s *Snapshot) *fbx.TemplateSet {
	set := &fbx.TemplateSet{}
	set.Add(fbx.TemplateGlobalSettings(1))
	if n := len(s.Objects); n > 0 {
		set.Add(fbx.TemplateModel(nil, n))
	}
	if n := len(s.Cameras); n > 0 {
		set.Add(fbx.TemplateCameraSwitcher(nil, n))
		set.Add(fbx.TemplateCamera(nil, n))
	}
	if n := len(s.Meshes); n > 0 {
		set.Add(fbx.TemplateGeometry(nil, n))
	}
	return set
}
