package fbx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	e := NewElement("Objects")
	attr := e.Child("NodeAttribute")
	attr.AddInt64(42)
	attr.AddString(NameClass("cam", "NodeAttribute"))
	attr.ChildInt32("Version", 101)
	attr.Child("Vertices").AddFloat64Array([]float64{1, 2, 3})

	var buf bytes.Buffer
	e.Dump(&buf, 0, false)

	out := buf.String()
	assert.Contains(t, out, "Objects: {")
	assert.Contains(t, out, `NodeAttribute: 42, "cam::NodeAttribute" {`)
	assert.Contains(t, out, "  Version: 101\n")
	assert.Contains(t, out, "*3 { a:1, 2, 3}")
}

func TestDumpSkipsLongArrays(t *testing.T) {
	e := NewElement("Vertices")
	e.AddFloat64Array(make([]float64, 100))

	var buf bytes.Buffer
	e.Dump(&buf, 0, false)
	assert.Contains(t, buf.String(), "*100 { SKIPPED }")

	buf.Reset()
	e.Dump(&buf, 0, true)
	assert.NotContains(t, buf.String(), "SKIPPED")
}
