package ufcli_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disjoint_tool/internal/testutils"
	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/ufcli"
	"disjoint_tool/pkg/unionfind"
)

const citiesJSON = `[
	{"id": 0, "name": "Zurich", "cost": 320},
	{"id": 1, "name": "Bern", "cost": 180},
	{"id": 2, "name": "Basel", "cost": 150}
]`

func TestNewEngineWidths(t *testing.T) {
	for _, width := range ufcli.Widths() {
		eng, err := ufcli.NewEngine(unionfind.DefaultConfig(6), width)
		require.NoError(t, err, "width %d", width)
		require.NoError(t, eng.Union(1, 4))
		root, err := eng.Find(4)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), root)
		assert.Equal(t, []uint64{0, 1, 2, 3, 1, 5}, eng.Representative())
		assert.Equal(t, []uint{0, 1, 0, 0, 0, 0}, eng.Heuristic())
	}

	_, err := ufcli.NewEngine(unionfind.DefaultConfig(6), 12)
	assert.Equal(t, errorutil.CodeInvalidUsage, errorutil.ExitCodeFromError(err))
}

func TestNarrowEngineRejectsWideOperand(t *testing.T) {
	eng, err := ufcli.NewEngine(unionfind.DefaultConfig(10), 8)
	require.NoError(t, err)

	// 260 截断到 uint8 是 4，不能被当成合法元素
	_, err = eng.Find(260)
	assert.True(t, errors.Is(err, unionfind.ErrOutOfRange))
	err = eng.Union(1, 260)
	assert.True(t, errors.Is(err, unionfind.ErrOutOfRange))
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, eng.Representative())

	_, err = ufcli.NewSession(unionfind.DefaultConfig(300), 8)
	assert.Equal(t, errorutil.CodeConfigError, errorutil.ExitCodeFromError(err))
}

func TestVertexSession(t *testing.T) {
	records, err := ufcli.ParseVertices([]byte(citiesJSON))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ufcli.Vertex{Key: 1, Name: "Bern", Cost: 180}, records[1])

	s, err := ufcli.NewVertexSession(unionfind.Config{}, records)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	v, err := s.Resolve("Basel")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)
	v, err = s.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	_, err = s.Resolve("Geneva")
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	require.NoError(t, s.Union(2, 1))
	assert.Equal(t, "Zurich(0)", s.Label(0))

	// 代表元数组里存的是整条记录，合并后 Bern 的槽位存着 Basel
	vertices := s.Vertices()
	assert.Equal(t, ufcli.Vertex{Key: 2, Name: "Basel", Cost: 150}, vertices[1])
	assert.Equal(t, []uint64{0, 2, 2}, s.Representative())
}

func TestVertexSessionErrors(t *testing.T) {
	_, err := ufcli.ParseVertices([]byte(`[{"id": -1}]`))
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))
	_, err = ufcli.ParseVertices([]byte(`{"id": 0}`))
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	// 不是恒等排列
	records, err := ufcli.ParseVertices([]byte(`[{"id": 1, "name": "a"}, {"id": 0, "name": "b"}]`))
	require.NoError(t, err)
	_, err = ufcli.NewVertexSession(unionfind.Config{}, records)
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))
	assert.True(t, errors.Is(err, unionfind.ErrInvalidData))

	records, err = ufcli.ParseVertices([]byte(`[{"id": 0, "name": "a"}, {"id": 1, "name": "a"}]`))
	require.NoError(t, err)
	_, err = ufcli.NewVertexSession(unionfind.Config{}, records)
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	records, err = ufcli.ParseVertices([]byte(citiesJSON))
	require.NoError(t, err)
	_, err = ufcli.NewVertexSession(unionfind.Config{Size: 5}, records)
	assert.Equal(t, errorutil.CodeConfigError, errorutil.ExitCodeFromError(err))
}

func TestLoadVertices(t *testing.T) {
	path := testutils.WriteTempFile(t, "cities.json", `{"vertices": `+citiesJSON+`}`)
	records, err := ufcli.LoadVertices(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = ufcli.LoadVertices(path + ".missing")
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))
}
