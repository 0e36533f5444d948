package fbx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Element {
	root := NewElement("")

	header := root.Child("FBXHeaderExtension")
	header.ChildInt32("FBXHeaderVersion", 1003)
	header.ChildInt32("FBXVersion", Version)
	header.ChildString("Creator", "encoder test")

	root.Child("FileId").AddBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})

	obj := root.Child("Objects").Child("NodeAttribute")
	obj.AddInt64(1234567890123)
	obj.AddString(NameClass("front", "NodeAttribute"))
	obj.AddString("Camera")
	obj.Child("Scalars").
		AddBool(true).
		AddInt16(-2).
		AddInt32(42).
		AddFloat32(1.5).
		AddFloat64(-0.25)

	// 8 values stay under the compression threshold
	obj.Child("Vertices").AddFloat64Array([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	big := make([]int32, 200)
	for i := range big {
		big[i] = int32(i * 3)
	}
	obj.Child("PolygonVertexIndex").AddInt32Array(big)

	root.Child("Takes").ChildString("Current", "")
	return root
}

func TestWriteParseRoundTrip(t *testing.T) {
	doc := testDocument()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, Version))

	parsed, version, err := Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int32(Version), version)
	assert.Equal(t, doc.Children, parsed.Children)
}

func TestWriteMagicAndVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewElement(""), Version))

	b := buf.Bytes()
	require.Greater(t, len(b), len(headerMagic)+4)
	assert.Equal(t, headerMagic, string(b[:len(headerMagic)]))
	assert.Equal(t, []byte{0x84, 0x1c, 0, 0}, b[len(headerMagic):len(headerMagic)+4])
}

func TestWriteDeterministic(t *testing.T) {
	doc := testDocument()
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, doc, Version))
	require.NoError(t, Write(&b, doc, Version))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestLargeArrayCompressed(t *testing.T) {
	big := make([]float64, 1000)
	for i := range big {
		big[i] = float64(i) * 0.5
	}
	e := NewElement("Vertices")
	e.AddFloat64Array(big)

	var buf bytes.Buffer
	require.NoError(t, encodeElement(&buf, e))
	// the compressed record must be well below the 8000 raw payload
	// bytes for this regular sequence
	assert.Less(t, buf.Len(), 4000)

	small := NewElement("Vertices")
	small.AddFloat64Array([]float64{1, 2, 3})
	var sbuf bytes.Buffer
	require.NoError(t, encodeElement(&sbuf, small))
	// 13 header/name bytes, 1 tag, 12 array header, 24 payload
	assert.Equal(t, 13+len("Vertices")+1+12+24, sbuf.Len())
}

func TestFooterAlignment(t *testing.T) {
	for _, doc := range []*Element{NewElement(""), testDocument()} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, doc, Version))
		b := buf.Bytes()

		// footer tail: version + 120 zeros + footMagic
		tail := b[len(b)-140:]
		assert.Equal(t, []byte{0x84, 0x1c, 0, 0}, tail[:4])
		assert.Equal(t, make([]byte, 120), tail[4:124])
		assert.Equal(t, footMagic, tail[124:])

		// the 16 footID bytes and 4 zeros precede the alignment pad
		bodyLen := bytes.Index(b, footID)
		require.GreaterOrEqual(t, bodyLen, 0)
		padStart := bodyLen + len(footID) + 4
		padEnd := len(b) - 140
		pad := padEnd - padStart
		assert.Greater(t, pad, 0)
		assert.LessOrEqual(t, pad, 16)
		assert.Equal(t, 0, padEnd%16)
		assert.Equal(t, make([]byte, pad), b[padStart:padEnd])
	}
}

func TestAttributeTypeMismatch(t *testing.T) {
	e := NewElement("Bad")
	e.Attributes = append(e.Attributes, &Attribute{Kind: 'I', Value: int64(1)})
	var buf bytes.Buffer
	assert.Error(t, encodeElement(&buf, e))

	e = NewElement("Bad")
	e.Attributes = append(e.Attributes, &Attribute{Kind: 'Q', Value: int32(1)})
	buf.Reset()
	assert.Error(t, encodeElement(&buf, e))
}

func TestElementNameTooLong(t *testing.T) {
	e := NewElement(string(make([]byte, 256)))
	var buf bytes.Buffer
	assert.Error(t, encodeElement(&buf, e))
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.fbx")

	doc := testDocument()
	require.NoError(t, Save(doc, path, Version))

	loaded, version, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(Version), version)
	assert.Equal(t, doc.Children, loaded.Children)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "scene.fbx", entries[0].Name())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, _, err := Parse(bytes.NewReader([]byte("not an fbx file, not even close......")))
	assert.Error(t, err)
}
