package binel

import (
	"sort"

	"github.com/liamwhite/binel/internal/wire"
)

// lookupEntry tracks a candidate string-table entry's frequency and the
// position at which it was first encountered during the pass-1 walk, used
// to break frequency ties deterministically.
type lookupEntry struct {
	text      string
	count     int
	firstSeen int
}

// genLookup builds the string table for a tree: every element name, every
// attribute key, and every text-valued attribute except those stored under
// the reserved "innerText" key (which is typically long free text that
// benefits from RLE rather than interning). Entries are ranked by
// descending frequency, with ties broken by first-occurrence order in the
// walk, so that writer output is reproducible for a given input tree.
func genLookup(root *Element) []string {
	seen := make(map[string]*lookupEntry)
	var order []string

	bump := func(s string) {
		e, ok := seen[s]
		if !ok {
			e = &lookupEntry{text: s, firstSeen: len(order)}
			seen[s] = e
			order = append(order, s)
		}
		e.count++
	}

	var walk func(el *Element)
	walk = func(el *Element) {
		bump(el.Name)
		for _, key := range el.attrNames {
			bump(key)
			if key == innerTextKey {
				continue
			}
			if text, ok := el.attributes[key].AsText(); ok {
				bump(text)
			}
		}
		for _, child := range el.Children() {
			walk(child)
		}
	}
	walk(root)

	entries := make([]*lookupEntry, len(order))
	for i, s := range order {
		entries[i] = seen[s]
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].firstSeen < entries[j].firstSeen
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.text
	}
	return out
}

// encoder accumulates output bytes while writing against a precomputed
// string table.
type encoder struct {
	buf     []byte
	indexOf map[string]uint16
}

func newEncoder(lookup []string) *encoder {
	idx := make(map[string]uint16, len(lookup))
	for i, s := range lookup {
		idx[s] = uint16(i)
	}
	return &encoder{indexOf: idx}
}

func (enc *encoder) lookupIndex(s string) (uint16, bool) {
	idx, ok := enc.indexOf[s]
	return idx, ok
}

func (enc *encoder) putTaggedInt(v int32) {
	switch {
	case v >= 0 && v <= 255:
		enc.buf = append(enc.buf, 0x01, byte(v))
	case v >= -(1<<15) && v < (1<<15):
		enc.buf = append(enc.buf, 0x02)
		enc.buf = wire.PutI16(enc.buf, int16(v))
	default:
		enc.buf = append(enc.buf, 0x03)
		enc.buf = wire.PutI32(enc.buf, v)
	}
}

func (enc *encoder) putTaggedText(key, val string) error {
	if key != innerTextKey {
		if idx, ok := enc.lookupIndex(val); ok {
			enc.buf = append(enc.buf, 0x05)
			enc.buf = wire.PutU16(enc.buf, idx)
			return nil
		}
	}

	rle := wire.EncodeRLE(val)
	if len(rle) < len(val) && len(rle) <= 1<<15-1 {
		enc.buf = append(enc.buf, 0x07)
		enc.buf = wire.PutRLEString(enc.buf, rle)
		return nil
	}

	enc.buf = append(enc.buf, 0x06)
	enc.buf = wire.PutString(enc.buf, val)
	return nil
}

func (enc *encoder) putValue(key string, val Value) error {
	switch val.Kind {
	case Bool:
		b, _ := val.AsBool()
		var bv byte
		if b {
			bv = 1
		}
		enc.buf = append(enc.buf, 0x00, bv)
		return nil
	case Int:
		i, _ := val.AsInt()
		enc.putTaggedInt(i)
		return nil
	case Float:
		f, _ := val.AsFloat()
		enc.buf = append(enc.buf, 0x04)
		enc.buf = wire.PutF32(enc.buf, f)
		return nil
	case Text:
		t, _ := val.AsText()
		return enc.putTaggedText(key, t)
	default:
		return newInvalidData("attribute %q has unknown value kind", key)
	}
}

func (enc *encoder) putElement(el *Element) error {
	nameIdx, ok := enc.lookupIndex(el.Name)
	if !ok {
		return newIo("element name missing from string table", nil)
	}
	enc.buf = wire.PutU16(enc.buf, nameIdx)
	enc.buf = append(enc.buf, byte(el.NumAttrs()))

	for _, key := range el.attrNames {
		keyIdx, ok := enc.lookupIndex(key)
		if !ok {
			return newIo("attribute name missing from string table", nil)
		}
		enc.buf = wire.PutU16(enc.buf, keyIdx)
		if err := enc.putValue(key, el.attributes[key]); err != nil {
			return err
		}
	}

	children := el.Children()
	enc.buf = wire.PutU16(enc.buf, uint16(len(children)))
	for _, child := range children {
		if err := enc.putElement(child); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAttrValue encodes a single tagged attribute value in isolation,
// with no string table (so text values always fall back to RLE or inline
// encoding). Useful for testing the attribute wire format directly.
func EncodeAttrValue(v Value) ([]byte, error) {
	enc := newEncoder(nil)
	if err := enc.putValue("value", v); err != nil {
		return nil, err
	}
	return enc.buf, nil
}

// Write encodes file to its byte-exact BinEl representation.
func Write(file *File) ([]byte, error) {
	lookup := genLookup(file.Root)
	if len(lookup) > 1<<15-1 {
		return nil, newInvalidData("string table has %d entries, exceeding the signed 16-bit length limit", len(lookup))
	}

	var out []byte
	out = wire.PutString(out, header)
	out = wire.PutString(out, file.Package)
	out = wire.PutI16(out, int16(len(lookup)))
	for _, s := range lookup {
		out = wire.PutString(out, s)
	}

	enc := newEncoder(lookup)
	enc.buf = out
	if err := enc.putElement(file.Root); err != nil {
		return nil, err
	}
	return enc.buf, nil
}
