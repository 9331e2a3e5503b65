package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devicelab-dev/uiprobe/pkg/core"
)

func TestParse_Valid(t *testing.T) {
	tree, err := Parse(sampleHierarchy)
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"not xml",
		"",
		"   ",
		`<?xml version="1.0"?><hierarchy><node bounds="[0,0][1,1]">`,
		`<?xml version="1.0"?><hierarchy><node></hierarchy>`,
		`<?xml version="1.0"?><hierarchy><node text="a & b"/></hierarchy>`,
		`<?xml version="1.0"?>`,
	}

	for _, in := range inputs {
		tree, err := Parse(in)
		assert.Nil(t, tree, "input %q", in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, core.ErrParseFailed), "input %q: %v", in, err)
	}
}

func TestTree_DefaultQuery(t *testing.T) {
	tree, err := Parse(sampleHierarchy)
	require.NoError(t, err)

	nodes := tree.Query(MustCompile(DefaultQuery))
	require.Len(t, nodes, 2)
	assert.Equal(t, "node", nodes[0].Name)
	assert.Equal(t, "android.widget.FrameLayout", nodes[0].Attr("class"))
	assert.Equal(t, core.Bounds{X: 0, Y: 0, Width: 1080, Height: 1920}, nodes[0].Bounds)
	assert.Equal(t, "com.android.systemui", nodes[1].Attr("package"))
}

func TestTree_PreservesUnknownAttributes(t *testing.T) {
	tree, err := Parse(sampleHierarchy)
	require.NoError(t, err)

	nodes, err := tree.Find(`//node[@x-custom]`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "kept", nodes[0].Attr("x-custom"))
	assert.Equal(t, "", nodes[0].Attr("missing"))
}

func TestTree_PredicateQuery(t *testing.T) {
	tree, err := Parse(sampleHierarchy)
	require.NoError(t, err)

	nodes, err := tree.Find(`//node[@text='Login']`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	x, y := nodes[0].Center()
	assert.Equal(t, 200, x)
	assert.Equal(t, 240, y)

	buttons, err := tree.Find(`//node[@class='android.widget.Button']`)
	require.NoError(t, err)
	require.Len(t, buttons, 2)
	assert.Equal(t, "Login", buttons[0].Attr("text"))
	assert.Equal(t, "Sign Up", buttons[1].Attr("text"))

	none, err := tree.Find(`//node[@text='Missing']`)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTree_NodesAreCopies(t *testing.T) {
	tree, err := Parse(sampleHierarchy)
	require.NoError(t, err)

	first := tree.Query(MustCompile(`//node[@text='Login']`))
	first[0].Attributes["text"] = "changed"

	again := tree.Query(MustCompile(`//node[@text='Login']`))
	require.Len(t, again, 1)
	assert.Equal(t, "Login", again[0].Attr("text"))
}

func TestCompile(t *testing.T) {
	q, err := Compile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultQuery, q.String())

	_, err = Compile("//node[@text=")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidQuery))

	assert.Panics(t, func() { MustCompile("[[") })
}
