package fbx

import (
	"github.com/pkg/errors"
)

// TemplateProp is one default property of an object-class template.
// Value is a scalar (bool, int, int64, float64, string) or [3]float64
// for vector-like kinds.
type TemplateProp struct {
	Name  string
	Kind  PropKind
	Value interface{}
}

// Template is the default property set of one FBX object class plus the
// number of instances of that class the document will carry. Readers
// apply these defaults to every instance, so an instance property equal
// to its template value can be omitted. Templates are immutable after
// construction.
type Template struct {
	Class string // ObjectType tag, e.g. "Model", "NodeAttribute"
	Sub   string // PropertyTemplate tag, e.g. "FbxNode", "FbxCamera"
	Users int

	props []TemplateProp
	index map[string]int
}

// NewTemplate builds a template from defaults with overrides merged on
// top (override wins on name collision, new names are appended). The
// input slices are copied, never aliased.
func NewTemplate(class, sub string, defaults, overrides []TemplateProp, users int) *Template {
	t := &Template{
		Class: class,
		Sub:   sub,
		Users: users,
		index: map[string]int{},
	}
	for _, p := range defaults {
		t.put(p)
	}
	for _, p := range overrides {
		t.put(p)
	}
	return t
}

func (t *Template) put(p TemplateProp) {
	if i, ok := t.index[p.Name]; ok {
		t.props[i] = p
		return
	}
	t.index[p.Name] = len(t.props)
	t.props = append(t.props, p)
}

// Get returns the default for name, if the template carries one.
func (t *Template) Get(name string) (TemplateProp, bool) {
	if t == nil {
		return TemplateProp{}, false
	}
	if i, ok := t.index[name]; ok {
		return t.props[i], true
	}
	return TemplateProp{}, false
}

// canonicalValue normalizes a scalar or 3-tuple for structural
// comparison against a template default.
func canonicalValue(values []interface{}) interface{} {
	vals := flattenValues(values)
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		switch n := v.(type) {
		case int:
			out[i] = float64(n)
		case int32:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		case float32:
			out[i] = float64(n)
		case float64:
			out[i] = n
		default:
			out[i] = v
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	if len(out) == 3 {
		a, aok := out[0].(float64)
		b, bok := out[1].(float64)
		c, cok := out[2].(float64)
		if aok && bok && cok {
			return [3]float64{a, b, c}
		}
	}
	return nil
}

func templateValues(v interface{}) []interface{} {
	if v == nil {
		// zero-arity kinds (object references) carry no payload
		return nil
	}
	if t, ok := v.([3]float64); ok {
		return []interface{}{t[0], t[1], t[2]}
	}
	return []interface{}{v}
}

// WriteIfChanged appends a P record unless the value equals the
// template default for that name under the same kind. A nil template
// always writes. The suppression is semantically neutral: readers fill
// omitted properties from the template.
func (t *Template) WriteIfChanged(props *Element, kind PropKind, name string, values ...interface{}) (*Element, error) {
	if def, ok := t.Get(name); ok && def.Kind == kind {
		if canonicalValue(values) == canonicalValue(templateValues(def.Value)) {
			return nil, nil
		}
	}
	return WriteProperty(props, kind, name, values...)
}

// Write appends this template's ObjectType block to a Definitions
// element.
func (t *Template) Write(defs *Element) error {
	ot := defs.Child("ObjectType")
	ot.AddString(t.Class)
	ot.ChildInt32("Count", int32(t.Users))
	if t.Sub == "" && len(t.props) == 0 {
		return nil
	}
	pt := ot.Child("PropertyTemplate")
	pt.AddString(t.Sub)
	props := pt.Child("Properties70")
	for _, p := range t.props {
		if _, err := WriteProperty(props, p.Kind, p.Name, templateValues(p.Value)...); err != nil {
			return errors.Wrapf(err, "fbx: template %s/%s", t.Class, t.Sub)
		}
	}
	return nil
}

// TemplateSet is the per-document template registry, ordered by
// registration so Definitions output is reproducible.
type TemplateSet struct {
	list []*Template
}

func (s *TemplateSet) Add(t *Template) {
	s.list = append(s.list, t)
}

func (s *TemplateSet) Templates() []*Template {
	return s.list
}

// Find returns the registered template for a class and property
// template tag, or nil. The class tag alone is ambiguous: camera and
// camera switcher templates share the NodeAttribute class.
func (s *TemplateSet) Find(class, sub string) *Template {
	if s == nil {
		return nil
	}
	for _, t := range s.list {
		if t.Class == class && t.Sub == sub {
			return t
		}
	}
	return nil
}

// TotalUsers is the Count declared at the Definitions level. It must
// match the instances later written to Objects; readers size-allocate
// from it.
func (s *TemplateSet) TotalUsers() int {
	n := 0
	for _, t := range s.list {
		n += t.Users
	}
	return n
}
