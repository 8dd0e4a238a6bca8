package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disjoint_tool/pkg/unionfind"
)

// City 携带城市名和费用的顶点
type City struct {
	CityID uint32
	Name   string
	Cost   int
}

func (c City) ID() uint32 { return c.CityID }

func cities() []City {
	return []City{
		{0, "Zurich", 320},
		{1, "Munich", 210},
		{2, "Paris", 180},
		{3, "London", 190},
		{4, "Oslo", 250},
		{5, "Stockholm", 280},
		{6, "Helsinki", 280},
	}
}

func TestVerticesQuickFind(t *testing.T) {
	uf, err := unionfind.NewVertices[City, uint32](unionfind.Config{Strategy: unionfind.KindQuickFind}, cities())
	require.NoError(t, err)
	assert.Equal(t, 7, uf.Len())

	require.NoError(t, uf.Union(4, 3))
	require.NoError(t, uf.Union(3, 2))
	require.NoError(t, uf.Union(6, 5))

	ok, err := uf.Connected(4, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = uf.Connected(6, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = uf.Connected(0, 6)
	require.NoError(t, err)
	assert.False(t, ok)

	// 代表元是整条记录
	root, err := uf.Find(4)
	require.NoError(t, err)
	assert.Equal(t, "Paris", root.Name)
	id, err := uf.FindID(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), id)

	assert.Equal(t, uf.Representative(), uf.Records())
}

func TestVerticesQuickUnionBySize(t *testing.T) {
	cfg := unionfind.Config{Heuristic: unionfind.HeuristicSize, PathCompression: true}
	uf, err := unionfind.NewVertices[City, uint32](cfg, cities())
	require.NoError(t, err)

	require.NoError(t, uf.Union(1, 2))
	require.NoError(t, uf.Union(3, 2))
	root, err := uf.Find(3)
	require.NoError(t, err)
	assert.Equal(t, "Munich", root.Name)
	assert.Equal(t, []uint{1, 3, 1, 1, 1, 1, 1}, uf.Heuristic())

	// 子节点位置上存放的是父节点的记录
	rep := uf.Representative()
	assert.Equal(t, "Munich", rep[2].Name)
	assert.Equal(t, "Munich", rep[3].Name)
	assert.Equal(t, "Oslo", rep[4].Name)
}

func TestVerticesValidation(t *testing.T) {
	swapped := cities()
	swapped[1], swapped[2] = swapped[2], swapped[1]
	_, err := unionfind.NewVertices[City, uint32](unionfind.DefaultConfig(0), swapped)
	assert.ErrorIs(t, err, unionfind.ErrInvalidData)

	outside := cities()
	outside[6].CityID = 9
	_, err = unionfind.NewVertices[City, uint32](unionfind.DefaultConfig(0), outside)
	assert.ErrorIs(t, err, unionfind.ErrInvalidData)
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)

	_, err = unionfind.NewVertices[City, uint32](unionfind.DefaultConfig(5), cities())
	assert.ErrorIs(t, err, unionfind.ErrConfig)

	assert.NoError(t, unionfind.ValidateVertices[City, uint32](cities()))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     unionfind.Config
		wantErr bool
	}{
		{"default", unionfind.DefaultConfig(8), false},
		{"zero value strategy", unionfind.Config{Size: 8}, false},
		{"quickfind", unionfind.Config{Strategy: unionfind.KindQuickFind, Size: 8}, false},
		{"empty universe", unionfind.DefaultConfig(0), true},
		{"quickfind with size heuristic", unionfind.Config{Strategy: unionfind.KindQuickFind, Heuristic: unionfind.HeuristicSize, Size: 8}, true},
		{"unknown strategy", unionfind.Config{Strategy: "slowfind", Size: 8}, true},
		{"unknown heuristic", unionfind.Config{Heuristic: "height", Size: 8}, true},
		{"heuristic size matches", unionfind.Config{Heuristic: unionfind.HeuristicRank, Size: 8, HeuristicSize: 8}, false},
		{"heuristic size mismatch", unionfind.Config{Heuristic: unionfind.HeuristicRank, Size: 8, HeuristicSize: 4}, true},
		{"unweighted with heuristic size", unionfind.Config{Heuristic: unionfind.HeuristicUnweighted, Size: 8, HeuristicSize: 8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, unionfind.ErrConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigRequiredHeuristicSize(t *testing.T) {
	assert.Equal(t, 8, unionfind.DefaultConfig(8).RequiredHeuristicSize())
	assert.Equal(t, 0, unionfind.Config{Strategy: unionfind.KindQuickFind, Size: 8}.RequiredHeuristicSize())
	assert.Equal(t, 0, unionfind.Config{Heuristic: unionfind.HeuristicUnweighted, Size: 8}.RequiredHeuristicSize())
	assert.Equal(t, "quickunion(n=8, heuristic=rank, compress=true)", unionfind.DefaultConfig(8).String())
}

func TestKindFlags(t *testing.T) {
	var k unionfind.Kind
	require.NoError(t, k.Set("qf"))
	assert.Equal(t, unionfind.KindQuickFind, k)
	assert.Error(t, k.Set("fast"))
	assert.Equal(t, "strategy", k.Type())
	assert.Equal(t, []string{"quickfind", "quickunion"}, k.Values())

	var h unionfind.HeuristicKind
	require.NoError(t, h.Set("bysize"))
	assert.Equal(t, unionfind.HeuristicSize, h)
	assert.Error(t, h.Set("depth"))
	assert.Equal(t, "size", h.String())
}

func TestNewRejectsNarrowIndex(t *testing.T) {
	_, err := unionfind.New[uint8](unionfind.DefaultConfig(300))
	assert.ErrorIs(t, err, unionfind.ErrConfig)

	uf, err := unionfind.New[uint8](unionfind.DefaultConfig(256))
	require.NoError(t, err)
	require.NoError(t, uf.Union(255, 0))
}

func TestParents(t *testing.T) {
	uf, err := unionfind.New[uint64](quickUnionConfig(6, unionfind.HeuristicSize, false))
	require.NoError(t, err)
	unionAll(t, uf, [2]uint64{0, 1}, [2]uint64{2, 1}, [2]uint64{4, 5})

	parents, err := uf.Parents()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 3, 4, 4}, parents)
}
