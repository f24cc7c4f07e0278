package bind

import (
	"fmt"
	"math"
	"reflect"

	"github.com/liamwhite/binel/pkg/binel"
)

var elementPtrType = reflect.TypeOf((*binel.Element)(nil))

type fieldKind int

const (
	kindAttr fieldKind = iota
	kindChild
	kindChildRaw // a *binel.Element field accepting any child name
	kindVec
	kindVecRaw // a []*binel.Element field accumulating any unmatched children
)

// fieldDesc describes one struct field's mapping, computed once per
// ToElement/FromElement call from its reflect.StructField and binel tag.
type fieldDesc struct {
	index     int
	goName    string
	name      string // serialized name; meaningless for the *Raw kinds
	kind      fieldKind
	optional  bool
	elemType  reflect.Type // struct element type, for kindChild/kindVec
	fieldType reflect.Type
}

func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

// describeFields walks t's exported fields and classifies each one as an
// attribute, a child element, a child-element vector, or a raw
// (any-name) passthrough, per its Go type and `binel:"..."` tag.
func describeFields(t reflect.Type) ([]fieldDesc, error) {
	var out []fieldDesc
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		ti := parseTag(f)
		if ti.skip {
			continue
		}

		ft := f.Type
		fd := fieldDesc{index: i, goName: f.Name, name: ti.name, fieldType: ft}

		switch {
		case ft.Kind() == reflect.Slice:
			elem := ft.Elem()
			if elem == elementPtrType {
				fd.kind = kindVecRaw
			} else if elem.Kind() == reflect.Struct {
				fd.kind = kindVec
				fd.elemType = elem
				if !ti.explict {
					fd.name = typeElementName(elem)
				}
			} else {
				return nil, fmt.Errorf("bind: field %s: unsupported vector element kind %s", f.Name, elem.Kind())
			}

		case ft.Kind() == reflect.Ptr:
			inner := ft.Elem()
			switch {
			case isPrimitiveKind(inner.Kind()):
				fd.kind = kindAttr
				fd.optional = true
			case inner.Kind() == reflect.Struct:
				fd.kind = kindChild
				fd.optional = true
				fd.elemType = inner
				if !ti.explict {
					fd.name = typeElementName(inner)
				}
			default:
				return nil, fmt.Errorf("bind: field %s: unsupported pointer kind %s", f.Name, inner.Kind())
			}

		case isPrimitiveKind(ft.Kind()):
			fd.kind = kindAttr

		case ft == elementPtrType:
			fd.kind = kindChildRaw

		case ft.Kind() == reflect.Struct:
			fd.kind = kindChild
			fd.elemType = ft
			if !ti.explict {
				fd.name = typeElementName(ft)
			}

		default:
			return nil, fmt.Errorf("bind: field %s: unsupported kind %s", f.Name, ft.Kind())
		}

		out = append(out, fd)
	}
	return out, nil
}

// isNewtype reports whether t is a single-field struct wrapping
// *binel.Element directly, the Go analogue of the source's newtype
// passthrough (e.g. Foregrounds(BinEl)): its whole mapping delegates to
// the inner element, and it accepts any element name on deserialize.
func isNewtype(t reflect.Type) bool {
	if t.NumField() != 1 {
		return false
	}
	f := t.Field(0)
	return f.PkgPath == "" && f.Type == elementPtrType
}

func structType(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("bind: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("bind: expected a struct, got %s", rv.Kind())
	}
	return rv, nil
}

// ToElement serializes a record (a struct, or pointer to one) to its
// *binel.Element representation.
func ToElement(v any) (*binel.Element, error) {
	rv, err := structType(v)
	if err != nil {
		return nil, err
	}
	t := rv.Type()
	name := typeElementName(t)

	if isNewtype(t) {
		inner, _ := rv.Field(0).Interface().(*binel.Element)
		if inner == nil {
			return binel.New(name), nil
		}
		return cloneWithName(inner, name), nil
	}

	fields, err := describeFields(t)
	if err != nil {
		return nil, err
	}

	el := binel.New(name)
	for _, fd := range fields {
		fv := rv.Field(fd.index)

		switch fd.kind {
		case kindAttr:
			if fd.optional {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			val, err := reflectToAttr(fv)
			if err != nil {
				return nil, fmt.Errorf("bind: field %s: %w", fd.goName, err)
			}
			el.Set(fd.name, val)

		case kindChild:
			if fd.optional {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			child, err := ToElement(fv.Interface())
			if err != nil {
				return nil, fmt.Errorf("bind: field %s: %w", fd.goName, err)
			}
			el.Insert(child)

		case kindChildRaw:
			ptr, _ := fv.Interface().(*binel.Element)
			if ptr != nil {
				el.Insert(ptr)
			}

		case kindVec, kindVecRaw:
			for i := 0; i < fv.Len(); i++ {
				item := fv.Index(i)
				if fd.kind == kindVecRaw {
					if ptr, _ := item.Interface().(*binel.Element); ptr != nil {
						el.Insert(ptr)
					}
					continue
				}
				child, err := ToElement(item.Interface())
				if err != nil {
					return nil, fmt.Errorf("bind: field %s[%d]: %w", fd.goName, i, err)
				}
				el.Insert(child)
			}
		}
	}
	return el, nil
}

// FromElement deserializes el into out, which must be a non-nil pointer to
// a struct. The element's name must match the record's serialized element
// name unless the record is a newtype passthrough.
func FromElement(el *binel.Element, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("bind: FromElement requires a non-nil pointer, got %T", out)
	}
	rv = rv.Elem()
	t := rv.Type()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("bind: FromElement requires a pointer to struct, got pointer to %s", t.Kind())
	}

	if isNewtype(t) {
		rv.Field(0).Set(reflect.ValueOf(el))
		return nil
	}

	expected := typeElementName(t)
	if el.Name != expected {
		return wrongName(expected, el.Name)
	}

	fields, err := describeFields(t)
	if err != nil {
		return err
	}

	assigned := make([]bool, len(fields))
	matchedChild := make([]*binel.Element, len(fields))
	vecChildren := make([][]*binel.Element, len(fields))

	for _, child := range el.Children() {
		for i := range fields {
			fd := &fields[i]
			switch fd.kind {
			case kindChild:
				if assigned[i] || child.Name != fd.name {
					continue
				}
				if _, hasAttr := el.Get(fd.name); hasAttr {
					return ambiguous(fd.name)
				}
				matchedChild[i] = child
				assigned[i] = true
			case kindChildRaw:
				if assigned[i] {
					continue
				}
				matchedChild[i] = child
				assigned[i] = true
			case kindVec:
				if child.Name != fd.name {
					continue
				}
				vecChildren[i] = append(vecChildren[i], child)
			case kindVecRaw:
				vecChildren[i] = append(vecChildren[i], child)
			default:
				continue
			}
			goto nextChild
		}
	nextChild:
	}

	for i := range fields {
		fd := &fields[i]
		fv := rv.Field(fd.index)

		switch fd.kind {
		case kindAttr:
			val, ok := el.Get(fd.name)
			if !ok {
				if fd.optional {
					continue
				}
				return missing(fd.name)
			}
			target := fv
			if fd.optional {
				target = reflect.New(fv.Type().Elem()).Elem()
			}
			if err := attrToReflect(val, target); err != nil {
				return unable(fd.name, err)
			}
			if fd.optional {
				ptr := reflect.New(fv.Type().Elem())
				ptr.Elem().Set(target)
				fv.Set(ptr)
			}

		case kindChild:
			if !assigned[i] {
				if fd.optional {
					continue
				}
				return missing(fd.name)
			}
			if fd.optional {
				ptr := reflect.New(fd.elemType)
				if err := FromElement(matchedChild[i], ptr.Interface()); err != nil {
					return unable(fd.name, err)
				}
				fv.Set(ptr)
			} else {
				ptr := reflect.New(fd.elemType)
				if err := FromElement(matchedChild[i], ptr.Interface()); err != nil {
					return unable(fd.name, err)
				}
				fv.Set(ptr.Elem())
			}

		case kindChildRaw:
			if !assigned[i] {
				return missing(fd.goName)
			}
			fv.Set(reflect.ValueOf(matchedChild[i]))

		case kindVec, kindVecRaw:
			kids := vecChildren[i]
			slice := reflect.MakeSlice(fd.fieldType, len(kids), len(kids))
			for j, kid := range kids {
				if fd.kind == kindVecRaw {
					slice.Index(j).Set(reflect.ValueOf(kid))
					continue
				}
				ptr := reflect.New(fd.elemType)
				if err := FromElement(kid, ptr.Interface()); err != nil {
					return unable(fd.name, err)
				}
				slice.Index(j).Set(ptr.Elem())
			}
			fv.Set(slice)
		}
	}

	return nil
}

func reflectToAttr(rv reflect.Value) (binel.Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return binel.BoolValue(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt32 || n > math.MaxInt32 {
			return binel.Value{}, fmt.Errorf("integer %d does not fit in 32 bits", n)
		}
		return binel.IntValue(int32(n)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt32 {
			return binel.Value{}, fmt.Errorf("integer %d does not fit in 32 bits", n)
		}
		return binel.IntValue(int32(n)), nil
	case reflect.Float32, reflect.Float64:
		return binel.FloatValue(float32(rv.Float())), nil
	case reflect.String:
		return binel.TextValue(rv.String()), nil
	default:
		return binel.Value{}, fmt.Errorf("unsupported attribute kind %s", rv.Kind())
	}
}

func attrToReflect(val binel.Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Bool:
		b, ok := val.AsBool()
		if !ok {
			return fmt.Errorf("expected a bool attribute")
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := val.AsInt()
		if !ok {
			return fmt.Errorf("expected an int attribute")
		}
		if rv.OverflowInt(int64(i)) {
			return fmt.Errorf("value %d overflows %s", i, rv.Kind())
		}
		rv.SetInt(int64(i))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := val.AsInt()
		if !ok {
			return fmt.Errorf("expected an int attribute")
		}
		if i < 0 {
			return fmt.Errorf("value %d is negative, cannot assign to unsigned field", i)
		}
		if rv.OverflowUint(uint64(i)) {
			return fmt.Errorf("value %d overflows %s", i, rv.Kind())
		}
		rv.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, ok := val.AsFloat()
		if !ok {
			return fmt.Errorf("expected a float attribute")
		}
		rv.SetFloat(float64(f))
	case reflect.String:
		s, ok := val.AsText()
		if !ok {
			return fmt.Errorf("expected a text attribute")
		}
		rv.SetString(s)
	default:
		return fmt.Errorf("unsupported attribute kind %s", rv.Kind())
	}
	return nil
}

// cloneWithName deep-copies el's attributes and children into a new
// Element named name, used by the newtype passthrough on serialize so the
// record's advertised element name (not necessarily the inner BinEl's own
// name) is what ends up on the wire.
func cloneWithName(el *binel.Element, name string) *binel.Element {
	out := binel.New(name)
	for _, key := range el.AttrNames() {
		val, _ := el.Get(key)
		out.Set(key, val)
	}
	for _, child := range el.Children() {
		out.Insert(child)
	}
	return out
}
