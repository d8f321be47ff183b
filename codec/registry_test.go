package codec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/codec"
)

type point struct {
	X, Y  float64
	Label string
}

func pointRegistry(opts ...codec.Option) *codec.Registry {
	reg := codec.NewRegistry(opts...)
	reg.Register("point", func(f codec.Fields) (any, error) {
		x, err := f.Float("x")
		if err != nil {
			return nil, err
		}
		y, err := f.Float("y")
		if err != nil {
			return nil, err
		}
		label, _ := f.String("label")
		return point{X: x, Y: y, Label: label}, nil
	})
	return reg
}

func TestSerialize_SortedMapKeys(t *testing.T) {
	s, err := codec.Serialize(map[string]any{"b": 1, "a": []any{"x", 2.5}, "c": map[string]any{"z": true, "y": nil}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":["x",2.5],"b":1,"c":{"y":null,"z":true}}`, s)
}

func TestSerialize_Scalars(t *testing.T) {
	for in, want := range map[any]string{"hi": `"hi"`, 42: `42`, 1.5: `1.5`, true: `true`} {
		s, err := codec.Serialize(in)
		require.NoError(t, err)
		assert.Equal(t, want, s)
	}
}

func TestRegistry_Deserialize(t *testing.T) {
	reg := pointRegistry()
	v, err := reg.Deserialize("point", `{"y":2,"label":"p","x":1}`)
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2, Label: "p"}, v)

	p, err := codec.DeserializeAs[point](reg, "point", `{"x":-1,"y":0.5}`)
	require.NoError(t, err)
	assert.Equal(t, point{X: -1, Y: 0.5}, p)
}

func TestRegistry_UnknownType(t *testing.T) {
	_, err := pointRegistry().Deserialize("circle", `{}`)
	assert.ErrorIs(t, err, selkit.ErrUnknownType)
	iss, ok := selkit.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "no decoder registered for type 'circle'", iss[0].Message)
}

func TestRegistry_ParseErrors(t *testing.T) {
	reg := pointRegistry()
	for _, in := range []string{`{"x":`, `not json`, `[1,2]`, `null`, `{"x":1,"y":2} trailing`} {
		_, err := reg.Deserialize("point", in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, selkit.ErrParse, in)
		iss, ok := selkit.AsIssues(err)
		require.True(t, ok, in)
		assert.Equal(t, selkit.CodeParseError, iss[0].Code, in)
	}
}

func TestRegistry_DuplicateKeys(t *testing.T) {
	in := `{"x":1,"x":2,"y":3}`

	_, err := pointRegistry().Deserialize("point", in)
	iss, ok := selkit.AsIssues(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, selkit.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/x", iss[0].Path)

	var warned selkit.Issues
	reg := pointRegistry(
		codec.WithStrictness(selkit.Strictness{OnDuplicateKey: selkit.Warn}),
		codec.WithWarningHandler(func(typeID string, iss selkit.Issues) { warned = append(warned, iss...) }),
	)
	v, err := reg.Deserialize("point", in)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.(point).Y)
	require.Len(t, warned, 1)
	assert.True(t, warned.HasCode(selkit.CodeDuplicateKey))

	_, err = pointRegistry(codec.WithStrictness(selkit.Strictness{OnDuplicateKey: selkit.Ignore})).Deserialize("point", in)
	assert.NoError(t, err)
}

func TestRegistry_MaxIssuesTruncatesWarnings(t *testing.T) {
	var warned selkit.Issues
	reg := pointRegistry(
		codec.WithStrictness(selkit.Strictness{OnDuplicateKey: selkit.Warn}),
		codec.WithMaxIssues(1),
		codec.WithWarningHandler(func(_ string, iss selkit.Issues) { warned = append(warned, iss...) }),
	)
	v, err := reg.Deserialize("point", `{"x":1,"x":2,"y":1,"y":2}`)
	require.NoError(t, err)
	assert.Equal(t, point{X: 2, Y: 2}, v)

	require.Len(t, warned, 2)
	assert.Equal(t, selkit.CodeDuplicateKey, warned[0].Code)
	assert.Equal(t, "/x", warned[0].Path)
	assert.Equal(t, selkit.CodeTruncated, warned[1].Code)
	assert.Equal(t, "truncated", warned[1].Message)
}

func TestRegistry_MaxBytes(t *testing.T) {
	_, err := pointRegistry(codec.WithMaxBytes(8)).Deserialize("point", `{"x":1,"y":2}`)
	iss, ok := selkit.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, selkit.CodeTooBig, iss[0].Code)
}

func TestRegistry_DeserializeYAML(t *testing.T) {
	reg := pointRegistry()
	v, err := reg.DeserializeYAML("point", "x: 1\ny: 2.5\nlabel: q\n")
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2.5, Label: "q"}, v)

	_, err = reg.DeserializeYAML("point", "x: 1\nx: 2\n")
	assert.ErrorIs(t, err, selkit.ErrParse)

	_, err = reg.DeserializeYAML("point", "- 1\n- 2\n")
	assert.ErrorIs(t, err, selkit.ErrParse)
}

func TestRegistry_DeserializeAsWrongType(t *testing.T) {
	_, err := codec.DeserializeAs[string](pointRegistry(), "point", `{"x":1,"y":2}`)
	require.Error(t, err)
	_, isIssues := selkit.AsIssues(err)
	assert.False(t, isIssues)
}

func TestRegistry_DecoderErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	reg := codec.NewRegistry()
	reg.Register("bad", func(codec.Fields) (any, error) { return nil, boom })
	_, err := reg.Deserialize("bad", `{}`)
	assert.Same(t, boom, err)
}

func TestRegistry_TypesAndRegister(t *testing.T) {
	reg := pointRegistry()
	reg.Register("alpha", func(codec.Fields) (any, error) { return nil, nil })
	assert.Equal(t, []string{"alpha", "point"}, reg.Types())
	assert.True(t, reg.Registered("alpha"))
	assert.False(t, reg.Registered("beta"))
	assert.Panics(t, func() { reg.Register("", nil) })
}

func TestFields_Accessors(t *testing.T) {
	f := codec.Fields{"n": 3, "s": "x", "nil": nil}
	assert.Equal(t, []string{"n", "nil", "s"}, f.Keys())
	assert.True(t, f.Has("nil"))

	n, err := f.Float("n")
	require.NoError(t, err)
	assert.Equal(t, 3.0, n)

	_, err = f.String("n")
	iss, _ := selkit.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, selkit.CodeInvalidType, iss[0].Code)

	err = f.Require("n", "a", "b")
	iss, _ = selkit.AsIssues(err)
	require.Len(t, iss, 2)
	assert.Equal(t, "/a", iss[0].Path)
	assert.Equal(t, "/b", iss[1].Path)
}
