package mason_test

import (
	"testing"
	"time"

	"github.com/alecthomas/units"
	"github.com/stretchr/testify/require"

	"github.com/maveniverse/mason"
)

func mustBuild(t *testing.T, input string) *mason.Node {
	t.Helper()
	root, err := mason.Build(mustParse(t, input))
	require.NoError(t, err)
	return root
}

func TestBuild(t *testing.T) {
	root := mustBuild(t, `
name = "test"
server {
  port = 8080
  ratio = 0.75
  enabled = true
  tags = [a, b, "c d"]
}
`)
	require.Equal(t, mason.ObjectNode, root.Type)
	require.True(t, root.Pos.Synthetic())
	require.Equal(t, []string{"name", "server"}, root.Keys())
	require.Equal(t, map[string]interface{}{
		"name": "test",
		"server": map[string]interface{}{
			"port":    int64(8080),
			"ratio":   0.75,
			"enabled": true,
			"tags":    []interface{}{"a", "b", "c d"},
		},
	}, root.Interface())

	server := root.Get("server")
	require.Equal(t, []string{"port", "ratio", "enabled", "tags"}, server.Keys())
	port, err := server.Get("port").Int()
	require.NoError(t, err)
	require.Equal(t, int64(8080), port)
	ratio, err := server.Get("ratio").Float()
	require.NoError(t, err)
	require.Equal(t, 0.75, ratio)
	enabled, err := server.Get("enabled").Bool()
	require.NoError(t, err)
	require.True(t, enabled)
	require.Len(t, server.Get("tags").Items, 3)
	require.Equal(t, 7, server.Get("tags").Pos.Line)
}

func TestBuildEmptyDocument(t *testing.T) {
	root := mustBuild(t, "# nothing here\n")
	require.Equal(t, mason.ObjectNode, root.Type)
	require.Empty(t, root.Fields)
	require.Equal(t, map[string]interface{}{}, root.Interface())
}

func TestBuildExplicitRoot(t *testing.T) {
	root := mustBuild(t, "{ a = [] }")
	require.False(t, root.Pos.Synthetic())
	require.Equal(t, map[string]interface{}{"a": []interface{}{}}, root.Interface())
}

func TestBuildRepeatedFields(t *testing.T) {
	root := mustBuild(t, `
a = 1
b { x = 1, y = 2 }
a = 2
b { y = 3, z = 4 }
c { x = 1 }
c = replaced
`)
	require.Equal(t, []string{"a", "b", "c"}, root.Keys())
	a, err := root.Get("a").Int()
	require.NoError(t, err)
	require.Equal(t, int64(2), a)
	require.Equal(t, []string{"x", "y", "z"}, root.Get("b").Keys())
	require.Equal(t, map[string]interface{}{"x": int64(1), "y": int64(3), "z": int64(4)}, root.Get("b").Interface())
	require.Equal(t, "replaced", root.Get("c").Interface())
}

func TestBuildError(t *testing.T) {
	_, err := mason.Build(mustParse(t, "a = { b = @ }"))
	require.EqualError(t, err, "1:11: Invalid character '@'; try enclosing the key or value in double quotes")
}

func TestNodeAccessorErrors(t *testing.T) {
	root := mustBuild(t, "s = text\no { }\n")
	_, err := root.Get("s").Int()
	require.EqualError(t, err, `1:5: unexpected string value "text"`)
	_, err = root.Get("s").Bool()
	require.EqualError(t, err, `1:5: unexpected string value "text"`)
	_, err = root.Get("o").Float()
	require.EqualError(t, err, "2:3: expected a scalar but got object")
	_, err = root.Get("missing").Int()
	require.EqualError(t, err, "missing value")
	require.Nil(t, root.Get("missing").Get("deeper"))
}

func TestNodeDurationAndSize(t *testing.T) {
	root := mustBuild(t, `
timeout = 30 seconds
poll = 250
heap = 512MiB
disk = 1.5G
bad = forever
`)
	timeout, err := root.Get("timeout").Duration()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, timeout)
	poll, err := root.Get("poll").Duration()
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, poll)
	heap, err := root.Get("heap").Size()
	require.NoError(t, err)
	require.Equal(t, 512*units.MiB, heap)
	disk, err := root.Get("disk").Size()
	require.NoError(t, err)
	require.Equal(t, units.Base2Bytes(1.5*float64(units.GiB)), disk)
	_, err = root.Get("bad").Duration()
	require.EqualError(t, err, `6:7: invalid duration: unknown duration unit "forever" in "forever"`)
}
