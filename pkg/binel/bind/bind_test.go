package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamwhite/binel/pkg/binel"
	"github.com/liamwhite/binel/pkg/binel/bind"
)

// Scenario 3 (spec §8): a record `OneField { value: i32 }` serializes to an
// element named "oneField" with a single "value" attribute, and back.
type OneField struct {
	Value int32 `binel:"value"`
}

func TestOneFieldRoundTrip(t *testing.T) {
	rec := OneField{Value: 42}
	el, err := bind.ToElement(&rec)
	require.NoError(t, err)
	assert.Equal(t, "oneField", el.Name)
	v, ok := el.Get("value")
	require.True(t, ok)
	i, ok := v.AsInt()
	require.True(t, ok)
	assert.Equal(t, int32(42), i)

	var out OneField
	require.NoError(t, bind.FromElement(el, &out))
	assert.Equal(t, rec, out)
}

// Scenario 4 (spec §8): a record-level rename overrides the derived name.
type Renamed struct {
	Value int32 `binel:"value"`
}

func (Renamed) ElementName() string { return "new/name" }

func TestRecordLevelRename(t *testing.T) {
	rec := Renamed{Value: 7}
	el, err := bind.ToElement(&rec)
	require.NoError(t, err)
	assert.Equal(t, "new/name", el.Name)

	var out Renamed
	require.NoError(t, bind.FromElement(el, &out))
	assert.Equal(t, rec, out)

	// A mismatched name is rejected.
	el.Name = "wrong"
	err = bind.FromElement(el, &out)
	require.Error(t, err)
	var bindErr *bind.Error
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, bind.ErrWrongName, bindErr.Code)
}

type innerText struct {
	Text string `binel:"innerText"`
}

func TestInnerTextFieldRoundTrip(t *testing.T) {
	rec := innerText{Text: "hello"}
	el, err := bind.ToElement(&rec)
	require.NoError(t, err)
	text, ok := el.Text()
	require.True(t, ok)
	assert.Equal(t, "hello", text)

	var out innerText
	require.NoError(t, bind.FromElement(el, &out))
	assert.Equal(t, rec, out)
}

type withOptional struct {
	Name *string `binel:"name"`
}

func TestOptionalFieldAbsentLeavesNil(t *testing.T) {
	rec := withOptional{}
	el, err := bind.ToElement(&rec)
	require.NoError(t, err)
	_, ok := el.Get("name")
	assert.False(t, ok)

	var out withOptional
	require.NoError(t, bind.FromElement(el, &out))
	assert.Nil(t, out.Name)
}

func TestOptionalFieldPresentRoundTrips(t *testing.T) {
	name := "present"
	rec := withOptional{Name: &name}
	el, err := bind.ToElement(&rec)
	require.NoError(t, err)

	var out withOptional
	require.NoError(t, bind.FromElement(el, &out))
	require.NotNil(t, out.Name)
	assert.Equal(t, name, *out.Name)
}

type requiredField struct {
	Value int32 `binel:"value"`
}

func TestMissingRequiredAttributeError(t *testing.T) {
	el := binel.New("requiredField")
	var out requiredField
	err := bind.FromElement(el, &out)
	require.Error(t, err)
	var bindErr *bind.Error
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, bind.ErrMissing, bindErr.Code)
	assert.Equal(t, "value", bindErr.Field)
}

type withChild struct {
	Inner OneField `binel:"oneField"`
}

func TestAmbiguousWhenAttributeAndChildBothMatch(t *testing.T) {
	el := binel.New("withChild")
	el.Set("oneField", binel.TextValue("collides"))
	child := binel.New("oneField")
	child.Set("value", binel.IntValue(1))
	el.Insert(child)

	var out withChild
	err := bind.FromElement(el, &out)
	require.Error(t, err)
	var bindErr *bind.Error
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, bind.ErrAmbiguous, bindErr.Code)
}

type badConversion struct {
	Value int32 `binel:"value"`
}

func TestUnableWhenAttributeTypeMismatches(t *testing.T) {
	el := binel.New("badConversion")
	el.Set("value", binel.TextValue("not an int"))
	var out badConversion
	err := bind.FromElement(el, &out)
	require.Error(t, err)
	var bindErr *bind.Error
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, bind.ErrUnable, bindErr.Code)
	assert.Equal(t, "value", bindErr.Field)
}

type withVec struct {
	Items []OneField `binel:"oneField"`
}

func TestVectorFieldAccumulatesAllMatchingChildren(t *testing.T) {
	el := binel.New("withVec")
	for i := int32(0); i < 3; i++ {
		child := binel.New("oneField")
		child.Set("value", binel.IntValue(i))
		el.Insert(child)
	}
	var out withVec
	require.NoError(t, bind.FromElement(el, &out))
	require.Len(t, out.Items, 3)
	assert.Equal(t, int32(0), out.Items[0].Value)
	assert.Equal(t, int32(2), out.Items[2].Value)

	roundTripped, err := bind.ToElement(&out)
	require.NoError(t, err)
	assert.True(t, el.Equal(roundTripped))
}

type rawPassthrough struct {
	Element *binel.Element
}

func TestNewtypePassthroughAcceptsAnyName(t *testing.T) {
	inner := binel.New("whatever")
	inner.Set("x", binel.IntValue(1))

	var out rawPassthrough
	require.NoError(t, bind.FromElement(inner, &out))
	assert.True(t, inner.Equal(out.Element))

	el, err := bind.ToElement(&out)
	require.NoError(t, err)
	assert.Equal(t, "rawPassthrough", el.Name)
}

type catchAll struct {
	Named   []OneField       `binel:"oneField"`
	Unknown []*binel.Element `binel:"unknown"`
}

func TestRawVectorCatchesUnmatchedChildren(t *testing.T) {
	el := binel.New("catchAll")
	known := binel.New("oneField")
	known.Set("value", binel.IntValue(9))
	el.Insert(known)
	el.Insert(binel.New("mystery"))
	el.Insert(binel.New("another"))

	var out catchAll
	require.NoError(t, bind.FromElement(el, &out))
	require.Len(t, out.Named, 1)
	require.Len(t, out.Unknown, 2)
	assert.Equal(t, "mystery", out.Unknown[0].Name)
	assert.Equal(t, "another", out.Unknown[1].Name)
}
