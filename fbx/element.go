package fbx

// Attribute is one typed payload value of an Element. Kind is the FBX
// type tag byte: 'C' bool, 'Y' int16, 'I' int32, 'L' int64, 'F' float32,
// 'D' float64, 'S' string, 'R' raw bytes, and 'b', 'i', 'l', 'f', 'd'
// for homogeneous arrays.
type Attribute struct {
	Kind  byte
	Value interface{}
}

// Element is a node of the FBX document tree. The document root has an
// empty name and is never serialized itself; its children are the
// top-level sections.
type Element struct {
	Name       string
	Attributes []*Attribute
	Children   []*Element
}

func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Child creates an empty child element, appends it and returns it.
func (e *Element) Child(name string) *Element {
	c := &Element{Name: name}
	e.Children = append(e.Children, c)
	return c
}

func (e *Element) Append(c *Element) {
	e.Children = append(e.Children, c)
}

func (e *Element) add(kind byte, v interface{}) *Element {
	e.Attributes = append(e.Attributes, &Attribute{Kind: kind, Value: v})
	return e
}

func (e *Element) AddBool(v bool) *Element {
	b := byte(0)
	if v {
		b = 1
	}
	return e.add('C', b)
}

func (e *Element) AddInt16(v int16) *Element   { return e.add('Y', v) }
func (e *Element) AddInt32(v int32) *Element   { return e.add('I', v) }
func (e *Element) AddInt64(v int64) *Element   { return e.add('L', v) }
func (e *Element) AddFloat32(v float32) *Element { return e.add('F', v) }
func (e *Element) AddFloat64(v float64) *Element { return e.add('D', v) }
func (e *Element) AddString(v string) *Element { return e.add('S', v) }
func (e *Element) AddBytes(v []byte) *Element  { return e.add('R', v) }

func (e *Element) AddBoolArray(v []byte) *Element     { return e.add('b', v) }
func (e *Element) AddInt32Array(v []int32) *Element   { return e.add('i', v) }
func (e *Element) AddInt64Array(v []int64) *Element   { return e.add('l', v) }
func (e *Element) AddFloat32Array(v []float32) *Element { return e.add('f', v) }
func (e *Element) AddFloat64Array(v []float64) *Element { return e.add('d', v) }

// Leaf helpers. Most FBX leaf nodes carry a single value or a 3-tuple.

func (e *Element) ChildInt32(name string, v int32) *Element {
	return e.Child(name).AddInt32(v)
}

func (e *Element) ChildInt64(name string, v int64) *Element {
	return e.Child(name).AddInt64(v)
}

func (e *Element) ChildFloat64(name string, v float64) *Element {
	return e.Child(name).AddFloat64(v)
}

func (e *Element) ChildString(name, v string) *Element {
	return e.Child(name).AddString(v)
}

func (e *Element) ChildBytes(name string, v []byte) *Element {
	return e.Child(name).AddBytes(v)
}

func (e *Element) ChildVec3(name string, v [3]float64) *Element {
	return e.Child(name).AddFloat64(v[0]).AddFloat64(v[1]).AddFloat64(v[2])
}

// FindChild returns the first child with the given name, or nil.
func (e *Element) FindChild(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (e *Element) GetChildren() []*Element {
	if e == nil {
		return nil
	}
	return e.Children
}

// Attr returns the i-th attribute, or nil.
func (e *Element) Attr(i int) *Attribute {
	if e == nil || i >= len(e.Attributes) {
		return nil
	}
	return e.Attributes[i]
}

func (e *Element) AttrInt64(i int) int64 {
	return e.Attr(i).ToInt64(0)
}

func (e *Element) AttrFloat64(i int) float64 {
	return e.Attr(i).ToFloat64(0)
}

func (e *Element) AttrString(i int) string {
	return e.Attr(i).ToString("")
}

func (a *Attribute) ToInt64(defvalue int64) int64 {
	if a == nil {
		return defvalue
	}
	switch v := a.Value.(type) {
	case byte:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	return defvalue
}

func (a *Attribute) ToFloat64(defvalue float64) float64 {
	if a == nil {
		return defvalue
	}
	switch v := a.Value.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return defvalue
}

func (a *Attribute) ToString(defvalue string) string {
	if a == nil {
		return defvalue
	}
	switch v := a.Value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return defvalue
}
