package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/core"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "1.0.0\n", out)
}

func TestGenerate_Stdout(t *testing.T) {
	code, out, errOut := execute(t, "generate", "cycle", "3", "--id", "ring")
	require.Equal(t, ExitSuccess, code, errOut)

	g, err := core.Unmarshal([]byte(out), codec.JSON)
	require.NoError(t, err)
	assert.Equal(t, "ring", g.ID())
	assert.Equal(t, []string{"0", "1", "2"}, g.Vertices())
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.ContainsEdgeBetween("2", "0"))
}

func TestGenerate_Errors(t *testing.T) {
	code, _, errOut := execute(t, "generate", "torus", "3")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "unknown shape")

	code, _, _ = execute(t, "generate", "path", "x")
	assert.Equal(t, ExitError, code)

	code, _, _ = execute(t, "generate", "path", "1")
	assert.Equal(t, ExitError, code)

	code, _, _ = execute(t, "generate", "path", "3", "--format", "toml")
	assert.Equal(t, ExitError, code)
}

func TestConvertAndStats(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ring.yaml")
	code, _, errOut := execute(t, "generate", "cycle", "4", "--prefix", "s", "--id", "ring", "--out", src)
	require.Equal(t, ExitSuccess, code, errOut)

	for _, name := range []string{"ring.graphml", "ring.msgpack", "ring.json"} {
		dst := filepath.Join(dir, name)
		code, _, errOut = execute(t, "convert", src, dst)
		require.Equal(t, ExitSuccess, code, errOut)

		code, out, errOut := execute(t, "stats", dst)
		require.Equal(t, ExitSuccess, code, errOut)
		assert.Contains(t, out, "id:          ring\n")
		assert.Contains(t, out, "vertices:    4\n")
		assert.Contains(t, out, "edges:       4\n")
		assert.Contains(t, out, "left-total:  true\n")
		assert.Contains(t, out, "scc:         1\n")
	}
}

func TestStats_PathNotLeftTotal(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "p.json")
	code, _, _ := execute(t, "generate", "path", "3", "--out", dst)
	require.Equal(t, ExitSuccess, code)

	code, out, _ := execute(t, "stats", dst)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "left-total:  false\n")
	assert.Contains(t, out, "scc:         3\n")
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"g"`), 0o644))
	code, _, errOut := execute(t, "stats", bad)
	assert.Equal(t, ExitDataError, code)
	assert.Contains(t, errOut, "error:")

	dangling := filepath.Join(dir, "dangling.json")
	require.NoError(t, os.WriteFile(dangling, []byte(`{"id":"g","class_name":"Graph","is_multigraph":false,"allow_loops":true,
"vertices":[{"id":"a","class_name":"Vertex"}],
"edges":[{"id":"e1","class_name":"Edge","source_id":"a","target_id":"zz"}]}`), 0o644))
	code, _, _ = execute(t, "stats", dangling)
	assert.Equal(t, ExitDataError, code)

	code, _, _ = execute(t, "stats", filepath.Join(dir, "missing.json"))
	assert.Equal(t, ExitError, code)

	code, _, _ = execute(t, "stats", filepath.Join(dir, "noext"))
	assert.Equal(t, ExitError, code)

	code, _, _ = execute(t, "stats")
	assert.Equal(t, ExitError, code)
}

func TestVerboseLogging(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "g.json")
	code, _, _ := execute(t, "generate", "star", "3", "--out", src)
	require.Equal(t, ExitSuccess, code)

	code, _, errOut := execute(t, "--verbose", "convert", src, filepath.Join(dir, "g.yml"))
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut, "msg=converted")
	assert.Contains(t, errOut, "edges=2")
}

func TestPath(t *testing.T) {
	src := filepath.Join(t.TempDir(), "p.json")
	code, _, _ := execute(t, "generate", "path", "4", "--prefix", "s", "--weight", "1.5", "--out", src)
	require.Equal(t, ExitSuccess, code)

	code, out, errOut := execute(t, "path", src, "s0", "s3")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "path:  s0 -> s1 -> s2 -> s3\nedges: e1 e2 e3\ncost:  4.5\n", out)

	code, _, errOut = execute(t, "path", src, "s3", "s0")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "no path")

	for _, bad := range []string{"NaN", "-1"} {
		code, _, errOut = execute(t, "path", src, "s0", "s3", "--max", bad)
		assert.Equal(t, ExitError, code, bad)
		assert.Contains(t, errOut, "--max must be non-negative", bad)
	}

	code, out, _ = execute(t, "path", src, "s0", "s3", "--max", "3")
	assert.Equal(t, ExitError, code, out)
}
