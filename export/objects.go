package export

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/meshtools/fbxexport/fbx"
)

// writeObjects emits the object records. Every camera contributes two
// adjacent NodeAttribute records: its switcher first, then the camera
// itself.
func writeObjects(root *fbx.Element, s *session) error {
	objects := root.Child("Objects")
	for _, o := range s.snap.Cameras {
		if err := writeCameraSwitcher(objects, s, o); err != nil {
			return errors.Wrapf(err, "export: camera %q", o.Name)
		}
		if err := writeCamera(objects, s, o); err != nil {
			return errors.Wrapf(err, "export: camera %q", o.Name)
		}
	}
	return nil
}

// writeCameraSwitcher emits the selector record FBX pairs with every
// camera.
func writeCameraSwitcher(objects *fbx.Element, s *session, o *Object) error {
	cam := o.Camera
	uid, err := s.uids.ID(cam.SwitcherKey())
	if err != nil {
		return err
	}

	sw := objects.Child("NodeAttribute")
	sw.AddInt64(int64(uid))
	sw.AddString(fbx.NameClass(cam.Name+" switcher", "NodeAttribute"))
	sw.AddString("CameraSwitcher")

	props := sw.Child("Properties70")
	tmpl := s.snap.Templates.Find("NodeAttribute", "FbxCameraSwitcher")
	if _, err := tmpl.WriteIfChanged(props, fbx.PropInteger, "Camera Index", 100); err != nil {
		return err
	}

	sw.ChildInt32("Version", 101)
	sw.ChildString("Name", "Model::Camera Switcher")
	sw.ChildInt32("CameraId", 0)
	sw.ChildInt32("CameraName", 100)
	sw.Child("CameraIndexName")
	return nil
}

// cameraMatrix picks the transform the camera's basis is derived from:
// parent-relative when the parent object is exported too, world space
// otherwise. The global transform is applied on top either way. A
// singular parent transform cannot be inverted and falls back to world
// space as well.
func cameraMatrix(s *session, o *Object) mgl64.Mat4 {
	m := o.Matrix
	if o.Parent != nil && s.snap.Contains(o.Parent) {
		if p := o.Parent.Matrix; p.Det() != 0 {
			m = p.Inv().Mul4(o.Matrix)
		}
	}
	return s.snap.GlobalMatrix.Mul4(m)
}

// cameraBasis extracts position, up and view direction. Unit axes are
// rotated through the normalized basis so scale does not leak into the
// directions.
func cameraBasis(m mgl64.Mat4) (loc, up, dir mgl64.Vec3) {
	loc = m.Col(3).Vec3()
	up = m.Col(1).Vec3()
	if l := up.Len(); l > 0 {
		up = up.Mul(1 / l)
	}
	dir = m.Col(2).Vec3().Mul(-1)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return loc, up, dir
}

func writeCamera(objects *fbx.Element, s *session, o *Object) error {
	cam := o.Camera
	uid, err := s.uids.ID(cam.Key())
	if err != nil {
		return err
	}

	e := objects.Child("NodeAttribute")
	e.AddInt64(int64(uid))
	e.AddString(fbx.NameClass(cam.Name, "NodeAttribute"))
	e.AddString("Camera")

	loc, up, dir := cameraBasis(cameraMatrix(s, o))
	interest := loc.Add(dir)

	filmWidth := mmToInch(cam.SensorWidth)
	filmHeight := mmToInch(cam.SensorHeight)
	filmAspect := filmWidth / filmHeight
	offsetX := filmWidth * cam.ShiftX
	// TODO: verify the film aspect factor against files from other
	// exporters; the natural axis here would be the width.
	offsetY := filmAspect * filmHeight * cam.ShiftY

	props := e.Child("Properties70")
	tmpl := s.snap.Templates.Find("NodeAttribute", "FbxCamera")
	type p struct {
		kind   fbx.PropKind
		name   string
		values []interface{}
	}
	camProps := []p{
		{fbx.PropVector3D, "Position", []interface{}{[3]float64(loc)}},
		{fbx.PropVector3D, "UpVector", []interface{}{[3]float64(up)}},
		{fbx.PropVector3D, "InterestPosition", []interface{}{[3]float64(interest)}},
		{fbx.PropDouble, "FilmWidth", []interface{}{filmWidth}},
		{fbx.PropDouble, "FilmHeight", []interface{}{filmHeight}},
		{fbx.PropDouble, "FilmAspectRatio", []interface{}{filmAspect}},
		{fbx.PropDouble, "FilmOffsetX", []interface{}{offsetX}},
		{fbx.PropDouble, "FilmOffsetY", []interface{}{offsetY}},
		{fbx.PropFieldOfView, "FieldOfView", []interface{}{degrees(cam.AngleX)}},
		{fbx.PropDouble, "NearPlane", []interface{}{cam.ClipStart * s.snap.GlobalScale}},
		{fbx.PropDouble, "FarPlane", []interface{}{cam.ClipEnd * s.snap.GlobalScale}},
	}
	for _, cp := range camProps {
		if _, err := tmpl.WriteIfChanged(props, cp.kind, cp.name, cp.values...); err != nil {
			return err
		}
	}

	e.ChildString("TypeFlags", "Camera")
	e.ChildInt32("GeometryVersion", 124)
	e.ChildVec3("Position", [3]float64(loc))
	e.ChildVec3("Up", [3]float64(up))
	e.ChildVec3("LookAt", [3]float64(interest))
	e.ChildInt32("ShowInfoOnMoving", 1)
	e.ChildInt32("ShowAudio", 0)
	e.ChildVec3("AudioColor", [3]float64{0, 1, 0})
	e.ChildFloat64("CameraOrthoZoom", 1.0)
	return nil
}

// writeConnections emits the structural Connections section. Object
// link population builds on the element tree and is owned by the host
// side of the pipeline.
func writeConnections(root *fbx.Element, s *session) error {
	root.Child("Connections")
	return nil
}

// writeTakes emits the structural Takes section; animation curves are
// owned by the host side of the pipeline.
func writeTakes(root *fbx.Element, s *session) error {
	takes := root.Child("Takes")
	takes.ChildString("Current", "")
	return nil
}
