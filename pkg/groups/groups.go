// Package groups 把引擎的父指针快照整理成 根 -> 成员 的有序列表
package groups

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
)

var ErrCycle = errors.New("groups: parent pointers contain a cycle")

// Group 一个连通分量，Members 按位置升序
type Group struct {
	Root    int
	Members []int
}

func lessGroup(a, b *Group) bool { return a.Root < b.Root }

// Roots 沿父指针求出每个位置的根，不修改输入
// 父指针必须在 [0, len) 内，且 N 步以内能走到根
func Roots(parents []int) ([]int, error) {
	n := len(parents)
	roots := make([]int, n)
	for i := range parents {
		x := i
		for steps := 0; parents[x] != x; steps++ {
			if steps >= n {
				return nil, fmt.Errorf("%w: from %d", ErrCycle, i)
			}
			p := parents[x]
			if p < 0 || p >= n {
				return nil, fmt.Errorf("groups: parent %d of %d out of range [0, %d)", p, x, n)
			}
			x = p
		}
		roots[i] = x
	}
	return roots, nil
}

// FromParents 按根分组，结果按根升序排列
func FromParents(parents []int) ([]Group, error) {
	roots, err := Roots(parents)
	if err != nil {
		return nil, err
	}

	tree := btree.NewG(8, lessGroup)
	for i, r := range roots {
		g, ok := tree.Get(&Group{Root: r})
		if !ok {
			g = &Group{Root: r}
			tree.ReplaceOrInsert(g)
		}
		g.Members = append(g.Members, i)
	}

	out := make([]Group, 0, tree.Len())
	tree.Ascend(func(g *Group) bool {
		out = append(out, *g)
		return true
	})
	return out, nil
}

// Count 返回连通分量的个数
func Count(parents []int) (int, error) {
	gs, err := FromParents(parents)
	if err != nil {
		return 0, err
	}
	return len(gs), nil
}

// NameIndex 顶点名字到位置的有序索引
type NameIndex struct {
	byName *treemap.Map
	byPos  map[int]string
}

func NewNameIndex() *NameIndex {
	return &NameIndex{byName: treemap.NewWithStringComparator(), byPos: map[int]string{}}
}

// Add 登记一个名字，名字重复时返回错误
func (ix *NameIndex) Add(name string, pos int) error {
	if name == "" {
		return fmt.Errorf("groups: empty name for %d", pos)
	}
	if old, ok := ix.byName.Get(name); ok {
		return fmt.Errorf("groups: duplicate name %q (%d and %d)", name, old.(int), pos)
	}
	ix.byName.Put(name, pos)
	ix.byPos[pos] = name
	return nil
}

func (ix *NameIndex) Lookup(name string) (int, bool) {
	v, ok := ix.byName.Get(name)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Name 返回位置对应的名字，没有登记时返回空串
func (ix *NameIndex) Name(pos int) string {
	return ix.byPos[pos]
}

// Names 按字典序返回所有名字
func (ix *NameIndex) Names() []string {
	keys := ix.byName.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.(string))
	}
	return out
}

func (ix *NameIndex) Len() int { return ix.byName.Size() }
