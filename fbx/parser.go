package fbx

import (
	"compress/zlib"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

type countingReader struct {
	r        io.Reader
	position int64
}

func (r *countingReader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	r.position += int64(n)
	return n, err
}

func (r *countingReader) skipTo(pos int64) error {
	offset := pos - r.position
	if offset < 0 {
		return errors.New("fbx: cannot rewind")
	}
	_, err := io.CopyN(io.Discard, r, offset)
	return err
}

type binaryParser struct {
	r   *countingReader
	err error
}

func (p *binaryParser) read(v interface{}) {
	if p.err == nil {
		p.err = binary.Read(p.r, binary.LittleEndian, v)
	}
}

func (p *binaryParser) readUint8() uint8 {
	var v uint8
	p.read(&v)
	return v
}

func (p *binaryParser) readUint32() uint32 {
	var v uint32
	p.read(&v)
	return v
}

func (p *binaryParser) readString(n uint32) string {
	b := make([]byte, n)
	p.read(b)
	return string(b)
}

func (p *binaryParser) readArray(kind uint8) *Attribute {
	count := p.readUint32()
	encoding := p.readUint32()
	size := p.readUint32()

	var buf interface{}
	switch kind {
	case 'b':
		buf = make([]byte, count)
	case 'i':
		buf = make([]int32, count)
	case 'l':
		buf = make([]int64, count)
	case 'f':
		buf = make([]float32, count)
	case 'd':
		buf = make([]float64, count)
	}

	if encoding == 0 {
		p.read(buf)
		return &Attribute{Kind: kind, Value: buf}
	}

	next := p.r.position + int64(size)
	zr, err := zlib.NewReader(io.LimitReader(p.r, int64(size)))
	if err != nil {
		p.err = err
		return &Attribute{Kind: kind, Value: buf}
	}
	defer zr.Close()
	err = binary.Read(zr, binary.LittleEndian, buf)
	if p.err == nil {
		p.err = err
	}
	if p.err == nil {
		p.err = p.r.skipTo(next)
	}
	return &Attribute{Kind: kind, Value: buf}
}

func (p *binaryParser) readAttribute() *Attribute {
	kind := p.readUint8()
	switch kind {
	case 'C', 'B':
		return &Attribute{Kind: 'C', Value: p.readUint8()}
	case 'Y':
		var v int16
		p.read(&v)
		return &Attribute{Kind: kind, Value: v}
	case 'I':
		var v int32
		p.read(&v)
		return &Attribute{Kind: kind, Value: v}
	case 'L':
		var v int64
		p.read(&v)
		return &Attribute{Kind: kind, Value: v}
	case 'F':
		var v float32
		p.read(&v)
		return &Attribute{Kind: kind, Value: v}
	case 'D':
		var v float64
		p.read(&v)
		return &Attribute{Kind: kind, Value: v}
	case 'S':
		return &Attribute{Kind: kind, Value: p.readString(p.readUint32())}
	case 'R':
		buf := make([]byte, p.readUint32())
		p.read(buf)
		return &Attribute{Kind: kind, Value: buf}
	case 'b', 'i', 'l', 'f', 'd':
		return p.readArray(kind)
	}
	if p.err == nil {
		p.err = errors.Errorf("fbx: unknown attribute tag %q", kind)
	}
	return nil
}

// readElement returns nil for the empty sentinel record terminating a
// child list.
func (p *binaryParser) readElement() *Element {
	next := p.readUint32()
	nattr := p.readUint32()
	p.readUint32() // attribute byte size
	name := p.readString(uint32(p.readUint8()))
	if next == 0 || p.err != nil {
		return nil
	}

	e := &Element{Name: name}
	for i := uint32(0); i < nattr && p.err == nil; i++ {
		if a := p.readAttribute(); a != nil {
			e.Attributes = append(e.Attributes, a)
		}
	}
	for p.r.position < int64(next) && p.err == nil {
		child := p.readElement()
		if child == nil {
			break
		}
		e.Children = append(e.Children, child)
	}
	if p.err == nil {
		p.err = p.r.skipTo(int64(next))
	}
	if p.err != nil && p.err != io.EOF {
		return nil
	}
	return e
}

// Parse reads a binary FBX document and returns the root element and
// the container version.
func Parse(r io.Reader) (*Element, int32, error) {
	p := &binaryParser{r: &countingReader{r: r}}
	if p.readString(uint32(len(headerMagic))) != headerMagic {
		return nil, 0, errors.New("fbx: not a binary fbx file")
	}
	version := int32(p.readUint32())

	root := &Element{}
	for p.err == nil {
		e := p.readElement()
		if e == nil {
			break
		}
		root.Children = append(root.Children, e)
	}
	if p.err != nil && p.err != io.EOF {
		return nil, 0, p.err
	}
	return root, version, nil
}

// Load parses the binary FBX file at path.
func Load(path string) (*Element, int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "fbx: load %q", path)
	}
	defer f.Close()
	return Parse(f)
}
