package export

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meshtools/fbxexport/fbx"
)

// sectionWriter appends exactly one top-level child to the document
// root. The order of this table is the order readers expect.
type sectionWriter func(root *fbx.Element, s *session) error

var sections = []sectionWriter{
	writeHeader,
	writeDocuments,
	writeReferences,
	writeDefinitions,
	writeObjects,
	writeConnections,
	writeTakes,
}

// BuildDocument aggregates the scene once and runs the section writers
// in their fixed order. The returned root is ready for fbx.Write.
func BuildDocument(scene *Scene, opts *Options) (*fbx.Element, error) {
	o := opts.resolved()
	snap := BuildSnapshot(scene, o.ObjectKinds, *o.GlobalMatrix, o.GlobalScale, o.Logger)
	return buildDocument(snap, o)
}

func buildDocument(snap *Snapshot, o Options) (*fbx.Element, error) {
	s := newSession(snap, o)
	root := fbx.NewElement("")
	for _, write := range sections {
		if err := write(root, s); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// Export writes the scene to path as binary FBX. The output appears
// atomically; a failed export leaves no partial file.
func Export(scene *Scene, path string, opts *Options) error {
	o := opts.resolved()
	log := o.Logger
	start := time.Now()
	log.Info("fbx export starting",
		zap.String("scene", scene.Name), zap.String("path", path))

	root, err := BuildDocument(scene, &o)
	if err != nil {
		return errors.Wrapf(err, "export: scene %q", scene.Name)
	}
	if err := fbx.Save(root, path, FBXVersion); err != nil {
		return err
	}

	log.Info("fbx export finished",
		zap.String("path", path), zap.Duration("took", time.Since(start)))
	return nil
}

// Write is Export for an arbitrary destination, mainly for tests and
// piping.
func Write(scene *Scene, w io.Writer, opts *Options) error {
	o := opts.resolved()
	root, err := BuildDocument(scene, &o)
	if err != nil {
		return errors.Wrapf(err, "export: scene %q", scene.Name)
	}
	return fbx.Write(w, root, FBXVersion)
}
