package bind

import (
	"reflect"
	"strings"
	"unicode"
)

// tagInfo is the parsed form of a `binel:"..."` struct tag.
type tagInfo struct {
	name    string
	vec     bool
	skip    bool
	explict bool // true if a name was given explicitly rather than derived
}

func parseTag(f reflect.StructField) tagInfo {
	raw, ok := f.Tag.Lookup("binel")
	if !ok {
		return tagInfo{name: lowerCamel(f.Name)}
	}
	if raw == "-" {
		return tagInfo{skip: true}
	}

	parts := strings.Split(raw, ",")
	info := tagInfo{name: parts[0]}
	if info.name != "" {
		info.explict = true
	} else {
		info.name = lowerCamel(f.Name)
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "vec":
			info.vec = true
		case "skip":
			info.skip = true
		}
	}
	return info
}

// lowerCamel converts an exported Go identifier's leading rune to lower
// case, the default serialized-name derivation for both fields and record
// element names (e.g. "OneField" -> "oneField").
func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// namer is implemented by record types that want to override their
// default element name (derived from the Go type name).
type namer interface {
	ElementName() string
}

func typeElementName(t reflect.Type) string {
	if n, ok := instantiateNamer(t); ok {
		return n.ElementName()
	}
	return lowerCamel(t.Name())
}

func instantiateNamer(t reflect.Type) (namer, bool) {
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	// Try both the value and a pointer, since ElementName may be defined
	// on either receiver.
	v := reflect.New(t).Elem().Interface()
	if n, ok := v.(namer); ok {
		return n, true
	}
	pv := reflect.New(t).Interface()
	if n, ok := pv.(namer); ok {
		return n, true
	}
	return nil, false
}
