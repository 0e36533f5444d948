package fbx

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/pkg/errors"
)

const headerMagic = "Kaydara FBX Binary  \x00\x1a\x00"

// Version is the container format version this package targets.
const Version = 7300

// Arrays larger than this are deflated. Matches the behavior of the
// reference converter tooling.
const arrayCompressThreshold = 128

// blockSentinelLength is the size of the empty record terminating a
// child list (13 bytes for format versions below 7500).
const blockSentinelLength = 13

var footID = []byte{
	0xfa, 0xbc, 0xab, 0x09, 0xd0, 0xc8, 0xd4, 0x66,
	0xb1, 0x76, 0xfb, 0x83, 0x1c, 0xf7, 0x26, 0x7e,
}

var footMagic = []byte{
	0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e,
	0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b,
}

// Write serializes the document to the binary container format. The
// root element itself is not written; its children become the
// top-level records.
func Write(w io.Writer, root *Element, version int32) error {
	var buf bytes.Buffer
	buf.WriteString(headerMagic)
	writeUint32(&buf, uint32(version))
	for _, c := range root.Children {
		if err := encodeElement(&buf, c); err != nil {
			return err
		}
	}
	buf.Write(make([]byte, blockSentinelLength))
	writeFooter(&buf, version)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "fbx: write")
	}
	return nil
}

// Save writes the document to path atomically: the bytes go to a
// temporary file in the same directory which is renamed over the
// target, so a failed export leaves no partial file behind.
func Save(root *Element, path string, version int32) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".fbx-*")
	if err != nil {
		return errors.Wrapf(err, "fbx: save %q", path)
	}
	tmp := f.Name()
	if err := Write(f, root, version); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "fbx: save %q", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "fbx: save %q", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "fbx: save %q", path)
	}
	return nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func encodeElement(buf *bytes.Buffer, e *Element) error {
	if len(e.Name) > 255 {
		return errors.Errorf("fbx: element name too long (%d bytes)", len(e.Name))
	}

	var ab bytes.Buffer
	for i, a := range e.Attributes {
		if err := encodeAttribute(&ab, a); err != nil {
			return errors.Wrapf(err, "fbx: element %q attribute %d", e.Name, i)
		}
	}

	headerPos := buf.Len()
	writeUint32(buf, 0) // end offset, patched below
	writeUint32(buf, uint32(len(e.Attributes)))
	writeUint32(buf, uint32(ab.Len()))
	buf.WriteByte(byte(len(e.Name)))
	buf.WriteString(e.Name)
	buf.Write(ab.Bytes())

	if len(e.Children) > 0 || len(e.Attributes) == 0 {
		for _, c := range e.Children {
			if err := encodeElement(buf, c); err != nil {
				return err
			}
		}
		buf.Write(make([]byte, blockSentinelLength))
	}

	binary.LittleEndian.PutUint32(buf.Bytes()[headerPos:], uint32(buf.Len()))
	return nil
}

func encodeAttribute(buf *bytes.Buffer, a *Attribute) error {
	buf.WriteByte(a.Kind)
	switch a.Kind {
	case 'C':
		v, ok := a.Value.(byte)
		if !ok {
			return errors.Errorf("tag 'C' wants byte, got %T", a.Value)
		}
		buf.WriteByte(v)
	case 'Y':
		return writeScalar(buf, a, int16(0))
	case 'I':
		return writeScalar(buf, a, int32(0))
	case 'L':
		return writeScalar(buf, a, int64(0))
	case 'F':
		return writeScalar(buf, a, float32(0))
	case 'D':
		return writeScalar(buf, a, float64(0))
	case 'S':
		v, ok := a.Value.(string)
		if !ok {
			return errors.Errorf("tag 'S' wants string, got %T", a.Value)
		}
		writeUint32(buf, uint32(len(v)))
		buf.WriteString(v)
	case 'R':
		v, ok := a.Value.([]byte)
		if !ok {
			return errors.Errorf("tag 'R' wants []byte, got %T", a.Value)
		}
		writeUint32(buf, uint32(len(v)))
		buf.Write(v)
	case 'b', 'i', 'l', 'f', 'd':
		return encodeArray(buf, a)
	default:
		return errors.Errorf("unknown attribute tag %q", a.Kind)
	}
	return nil
}

func writeScalar(buf *bytes.Buffer, a *Attribute, want interface{}) error {
	if reflect.TypeOf(a.Value) != reflect.TypeOf(want) {
		return errors.Errorf("tag %q wants %T, got %T", a.Kind, want, a.Value)
	}
	return binary.Write(buf, binary.LittleEndian, a.Value)
}

func arrayLen(a *Attribute) (int, error) {
	switch v := a.Value.(type) {
	case []byte:
		return len(v), nil
	case []int32:
		return len(v), nil
	case []int64:
		return len(v), nil
	case []float32:
		return len(v), nil
	case []float64:
		return len(v), nil
	}
	return 0, errors.Errorf("tag %q wants a slice, got %T", a.Kind, a.Value)
}

func encodeArray(buf *bytes.Buffer, a *Attribute) error {
	count, err := arrayLen(a)
	if err != nil {
		return err
	}
	var data bytes.Buffer
	if err := binary.Write(&data, binary.LittleEndian, a.Value); err != nil {
		return errors.Wrapf(err, "tag %q", a.Kind)
	}

	encoding := uint32(0)
	payload := data.Bytes()
	if data.Len() > arrayCompressThreshold {
		encoding = 1
		var z bytes.Buffer
		zw, err := zlib.NewWriterLevel(&z, zlib.BestSpeed)
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		payload = z.Bytes()
	}

	writeUint32(buf, uint32(count))
	writeUint32(buf, encoding)
	writeUint32(buf, uint32(len(payload)))
	buf.Write(payload)
	return nil
}

func writeFooter(buf *bytes.Buffer, version int32) {
	buf.Write(footID)
	buf.Write(make([]byte, 4))
	// pad to a 16 byte boundary; a full block when already aligned
	pad := 16 - buf.Len()%16
	buf.Write(make([]byte, pad))
	writeUint32(buf, uint32(version))
	buf.Write(make([]byte, 120))
	buf.Write(footMagic)
}
