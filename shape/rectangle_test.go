package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	selkit "github.com/reoring/selkit"
	"github.com/reoring/selkit/codec"
	"github.com/reoring/selkit/shape"
)

func TestRectangle_Area(t *testing.T) {
	r := shape.New(10, 5)
	assert.Equal(t, 50.0, r.Area())

	r.Width = 3
	assert.Equal(t, 15.0, r.Area(), "area follows the current fields")
}

func TestRectangle_SerializeOmitsArea(t *testing.T) {
	s, err := codec.Serialize(shape.New(10, 5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":10,"height":5}`, s)
	assert.NotContains(t, s, "area")
}

func TestRectangle_RoundTrip(t *testing.T) {
	reg := codec.NewRegistry()
	shape.Register(reg)

	in := shape.New(2.5, 4)
	s, err := codec.Serialize(in)
	require.NoError(t, err)

	out, err := codec.DeserializeAs[shape.Rectangle](reg, shape.TypeName, s)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 10.0, out.Area())
}

func TestRectangle_KeyOrderDoesNotMatter(t *testing.T) {
	reg := codec.NewRegistry()
	shape.Register(reg)

	out, err := codec.DeserializeAs[shape.Rectangle](reg, shape.TypeName, `{"height":5,"width":10}`)
	require.NoError(t, err)
	assert.Equal(t, shape.New(10, 5), out)
}

func TestRectangle_YAMLRoundTrip(t *testing.T) {
	reg := codec.NewRegistry()
	shape.Register(reg)

	y, err := codec.SerializeYAML(shape.New(3, 7))
	require.NoError(t, err)
	assert.Equal(t, "width: 3\nheight: 7\n", y)

	v, err := reg.DeserializeYAML(shape.TypeName, y)
	require.NoError(t, err)
	assert.Equal(t, shape.New(3, 7), v)
}

func TestRectangle_DecodeErrors(t *testing.T) {
	reg := codec.NewRegistry()
	shape.Register(reg)

	_, err := reg.Deserialize(shape.TypeName, `{"width":1}`)
	iss, ok := selkit.AsIssues(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, selkit.CodeRequired, iss[0].Code)
	assert.Equal(t, "/height", iss[0].Path)

	_, err = reg.Deserialize(shape.TypeName, `{"width":"wide","height":2}`)
	iss, ok = selkit.AsIssues(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, selkit.CodeInvalidType, iss[0].Code)
	assert.Equal(t, "/width", iss[0].Path)
}
