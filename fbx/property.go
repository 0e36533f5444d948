package fbx

import (
	"strings"

	"github.com/pkg/errors"
)

// PropKind identifies one entry of the closed Properties70 taxonomy.
// Every kind knows the exact type/label/flag tag triple and the payload
// encoders the format expects for it. The catalog is format knowledge,
// not user-extensible data.
type PropKind int

const (
	PropBool PropKind = iota
	PropInteger
	PropEnum
	PropDouble
	PropColorRGB
	PropVector3D
	PropLclTranslation
	PropLclRotation
	PropLclScaling
	PropVisibility
	PropString
	PropStringURL
	PropTime
	PropObject
	PropFieldOfView
	PropFieldOfViewX
	PropFieldOfViewY
)

type valueEncoder func(p *Element, v interface{}) error

func encBool(p *Element, v interface{}) error {
	b, ok := v.(bool)
	if !ok {
		return errors.Errorf("want bool, got %T", v)
	}
	p.AddBool(b)
	return nil
}

func encInt32(p *Element, v interface{}) error {
	switch n := v.(type) {
	case int:
		p.AddInt32(int32(n))
	case int32:
		p.AddInt32(n)
	default:
		return errors.Errorf("want int, got %T", v)
	}
	return nil
}

func encInt64(p *Element, v interface{}) error {
	switch n := v.(type) {
	case int:
		p.AddInt64(int64(n))
	case int64:
		p.AddInt64(n)
	default:
		return errors.Errorf("want int64, got %T", v)
	}
	return nil
}

func encFloat64(p *Element, v interface{}) error {
	switch n := v.(type) {
	case float64:
		p.AddFloat64(n)
	case int:
		p.AddFloat64(float64(n))
	default:
		return errors.Errorf("want float64, got %T", v)
	}
	return nil
}

func encString(p *Element, v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return errors.Errorf("want string, got %T", v)
	}
	p.AddString(s)
	return nil
}

type propKindDef struct {
	typ   string
	label string
	flag  string
	enc   []valueEncoder
}

var vec3Encoders = []valueEncoder{encFloat64, encFloat64, encFloat64}

var propKinds = map[PropKind]propKindDef{
	PropBool:           {"bool", "", "", []valueEncoder{encBool}},
	PropInteger:        {"int", "Integer", "", []valueEncoder{encInt32}},
	PropEnum:           {"enum", "", "", []valueEncoder{encInt32}},
	PropDouble:         {"double", "Number", "", []valueEncoder{encFloat64}},
	PropColorRGB:       {"ColorRGB", "Color", "", vec3Encoders},
	PropVector3D:       {"Vector3D", "Vector", "", vec3Encoders},
	PropLclTranslation: {"Lcl Translation", "", "A+", vec3Encoders},
	PropLclRotation:    {"Lcl Rotation", "", "A+", vec3Encoders},
	PropLclScaling:     {"Lcl Scaling", "", "A+", vec3Encoders},
	PropVisibility:     {"Visibility", "", "A+", []valueEncoder{encFloat64}},
	PropString:         {"KString", "", "", []valueEncoder{encString}},
	PropStringURL:      {"KString", "Url", "", []valueEncoder{encString}},
	PropTime:           {"KTime", "Time", "", []valueEncoder{encInt64}},
	PropObject:         {"object", "", "", nil},
	PropFieldOfView:    {"FieldOfView", "", "A+", []valueEncoder{encFloat64}},
	PropFieldOfViewX:   {"FieldOfViewX", "", "A+", []valueEncoder{encFloat64}},
	PropFieldOfViewY:   {"FieldOfViewY", "", "A+", []valueEncoder{encFloat64}},
}

// flattenValues expands a single [3]float64 into its components so
// vector-valued properties can be passed either way.
func flattenValues(values []interface{}) []interface{} {
	if len(values) == 1 {
		if v, ok := values[0].([3]float64); ok {
			return []interface{}{v[0], v[1], v[2]}
		}
	}
	return values
}

// WriteProperty appends one P record to props. The payload is the
// property name, the kind's three tags, then one encoded value per the
// kind's encoder list. A kind or arity mismatch is a programming error
// and aborts the export.
func WriteProperty(props *Element, kind PropKind, name string, values ...interface{}) (*Element, error) {
	def, ok := propKinds[kind]
	if !ok {
		return nil, errors.Errorf("fbx: unknown property kind %d (property %q)", kind, name)
	}
	vals := flattenValues(values)
	if len(vals) != len(def.enc) {
		return nil, errors.Errorf("fbx: property %q takes %d values, got %d", name, len(def.enc), len(vals))
	}
	p := NewElement("P")
	p.AddString(name).AddString(def.typ).AddString(def.label).AddString(def.flag)
	for i, enc := range def.enc {
		if err := enc(p, vals[i]); err != nil {
			return nil, errors.Wrapf(err, "fbx: property %q value %d", name, i)
		}
	}
	props.Append(p)
	return p, nil
}

// NameClass builds the element name FBX stores for a typed object:
// the object name and class joined by the \x00\x01 separator.
func NameClass(name, class string) string {
	return name + "\x00\x01" + class
}

// DisplayName turns a stored name-and-class back into the usual
// "Class::Name" form for diagnostics.
func DisplayName(nameClass string) string {
	if i := strings.Index(nameClass, "\x00\x01"); i >= 0 {
		return nameClass[i+2:] + "::" + nameClass[:i]
	}
	return nameClass
}
