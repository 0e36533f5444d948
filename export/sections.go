package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/meshtools/fbxexport/fbx"
)

// Container format constants for the target readers.
const (
	FBXVersion       = 7300
	FBXHeaderVersion = 1003
)

// session bundles the per-export state handed to every section writer:
// the frozen snapshot, the identifier registry and the resolved
// options. Its lifetime is exactly one export call.
type session struct {
	snap *Snapshot
	uids *fbx.UIDRegistry
	opts Options
	time time.Time
}

func newSession(snap *Snapshot, opts Options) *session {
	t := time.Now()
	if opts.CreationTime != nil {
		t = *opts.CreationTime
	}
	return &session{
		snap: snap,
		uids: fbx.NewUIDRegistry(),
		opts: opts,
		time: t,
	}
}

func (s *session) timestamp() string {
	t := s.time
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d:%03d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/1e6)
}

// fileID derives the 16 FileId bytes from the scene name and the
// timestamp, so identical inputs produce identical files.
func (s *session) fileID() []byte {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.snap.SceneName+"|"+s.timestamp()))
	return id[:]
}

func writeHeader(root *fbx.Element, s *session) error {
	headerExt := root.Child("FBXHeaderExtension")
	headerExt.ChildInt32("FBXHeaderVersion", FBXHeaderVersion)
	headerExt.ChildInt32("FBXVersion", FBXVersion)
	headerExt.ChildInt32("EncryptionType", 0)

	t := s.time
	ts := headerExt.Child("CreationTimeStamp")
	ts.ChildInt32("Version", 1000)
	ts.ChildInt32("Year", int32(t.Year()))
	ts.ChildInt32("Month", int32(t.Month()))
	ts.ChildInt32("Day", int32(t.Day()))
	ts.ChildInt32("Hour", int32(t.Hour()))
	ts.ChildInt32("Minute", int32(t.Minute()))
	ts.ChildInt32("Second", int32(t.Second()))
	ts.ChildInt32("Millisecond", int32(t.Nanosecond()/1e6))

	headerExt.ChildString("Creator", s.opts.Creator)

	root.Child("FileId").AddBytes(s.fileID())
	root.ChildString("CreationTime", s.timestamp())
	root.ChildString("Creator", s.opts.Creator)

	return writeGlobalSettings(root, s)
}

// writeGlobalSettings writes the axis and unit convention. It is fixed:
// right-handed, Y up, Z forward, unit scale 1.0. Any remapping happens
// upstream through the global transform, never here.
func writeGlobalSettings(root *fbx.Element, s *session) error {
	gs := root.Child("GlobalSettings")
	gs.ChildInt32("Version", 1000)
	props := gs.Child("Properties70")

	tmpl := s.snap.Templates.Find("GlobalSettings", "")
	type p struct {
		kind   fbx.PropKind
		name   string
		values []interface{}
	}
	settings := []p{
		{fbx.PropInteger, "UpAxis", []interface{}{1}},
		{fbx.PropInteger, "UpAxisSign", []interface{}{1}},
		{fbx.PropInteger, "FrontAxis", []interface{}{2}},
		{fbx.PropInteger, "FrontAxisSign", []interface{}{1}},
		{fbx.PropInteger, "CoordAxis", []interface{}{0}},
		{fbx.PropInteger, "CoordAxisSign", []interface{}{1}},
		{fbx.PropDouble, "UnitScaleFactor", []interface{}{1.0}},
		{fbx.PropColorRGB, "AmbientColor", []interface{}{[3]float64{0, 0, 0}}},
		{fbx.PropString, "DefaultCamera", []interface{}{""}},
		{fbx.PropEnum, "TimeMode", []interface{}{11}},
		{fbx.PropTime, "TimeSpanStart", []interface{}{int64(0)}},
		{fbx.PropTime, "TimeSpanStop", []interface{}{int64(479181389250)}},
	}
	for _, sp := range settings {
		if _, err := tmpl.WriteIfChanged(props, sp.kind, sp.name, sp.values...); err != nil {
			return errors.Wrap(err, "export: global settings")
		}
	}
	return nil
}

// writeDocuments declares the single document this export produces.
// Multi-document files are not supported.
func writeDocuments(root *fbx.Element, s *session) error {
	docs := root.Child("Documents")
	docs.ChildInt32("Count", 1)

	uid, err := s.uids.ID("Document::" + s.snap.SceneName)
	if err != nil {
		return err
	}
	doc := docs.Child("Document")
	doc.AddInt64(int64(uid)).AddString("Scene").AddString("Scene")
	props := doc.Child("Properties70")
	if _, err := fbx.WriteProperty(props, fbx.PropObject, "SourceObject"); err != nil {
		return err
	}
	if _, err := fbx.WriteProperty(props, fbx.PropString, "ActiveAnimStackName", ""); err != nil {
		return err
	}
	doc.ChildInt64("RootNode", 0)
	return nil
}

// writeReferences is structurally required and always empty.
func writeReferences(root *fbx.Element, s *session) error {
	root.Child("References")
	return nil
}

func writeDefinitions(root *fbx.Element, s *session) error {
	defs := root.Child("Definitions")
	defs.ChildInt32("Version", 100)
	defs.ChildInt32("Count", int32(s.snap.Templates.TotalUsers()))
	for _, t := range s.snap.Templates.Templates() {
		if err := t.Write(defs); err != nil {
			return err
		}
	}
	return nil
}
