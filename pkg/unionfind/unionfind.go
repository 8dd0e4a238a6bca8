// Package unionfind 实现不做动态扩容的并查集引擎
//
// 全集大小在构造时固定，代表元数组和启发式数组可以由引擎自己持有、
// 借用调用者的内存，或者使用有容量上限的缓冲区。算法可以选择 Quick-Find
// 或 Quick-Union，Quick-Union 再叠加连接策略(无权/按秩/按大小)和路径压缩。
//
// 引擎是单线程的，不加锁。
package unionfind

import (
	"fmt"

	"disjoint_tool/pkg/logutil"
)

// UnionFind 是对外的引擎类型，T 为数组元素，I 为元素标识符
type UnionFind[T any, I Index] struct {
	arrays   Arrays[T, I]
	strategy Strategy[T, I]
	cfg      Config
}

func identity[I Index](v I) I { return v }

// heuristicSeed 返回配置对应启发式数组的初始值
func heuristicSeed(c Config) uint {
	h, err := c.normalize().Heuristic.Heuristic()
	if err != nil {
		return 0
	}
	seed, _ := h.Seed()
	return seed
}

// New 创建自有定长数组的引擎，初始时每个元素自成一组
func New[I Index](cfg Config) (*UnionFind[I, I], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !Fits[I](cfg.Size) {
		return nil, fmt.Errorf("%w: universe size %d does not fit identifier type", ErrConfig, cfg.Size)
	}
	rep := NewFixed(cfg.Size, func(i int) I { return I(i) })
	return FromContainers(cfg, identity[I], rep, newHeuristicStore(cfg))
}

// newHeuristicStore 按配置创建自有的启发式数组
func newHeuristicStore(cfg Config) Container[uint] {
	m := cfg.RequiredHeuristicSize()
	if m == 0 {
		return Empty[uint]{}
	}
	seed := heuristicSeed(cfg)
	return NewFixed(m, func(int) uint { return seed })
}

// FromBuffers 借用调用者的内存创建引擎
// 引擎不做初始化，调用者负责预先填好恒等划分和启发式初始值
func FromBuffers[I Index](cfg Config, rep []I, heur []uint) (*UnionFind[I, I], error) {
	var h Container[uint] = Empty[uint]{}
	if len(heur) > 0 {
		h = NewBorrowed(heur)
	}
	return FromContainers(cfg, identity[I], NewBorrowed(rep), h)
}

// FromContainers 用任意满足 Container 契约的存储创建引擎，heur 为 nil 表示没有启发式数组
func FromContainers[T any, I Index](cfg Config, id func(T) I, rep Container[T], heur Container[uint]) (*UnionFind[T, I], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if heur == nil {
		heur = Empty[uint]{}
	}
	if rep.Len() != cfg.Size {
		return nil, fmt.Errorf("%w: representative length %d, want %d", ErrConfig, rep.Len(), cfg.Size)
	}
	if want := cfg.RequiredHeuristicSize(); heur.Len() != want {
		return nil, fmt.Errorf("%w: heuristic length %d, want %d", ErrConfig, heur.Len(), want)
	}
	if id == nil {
		return nil, fmt.Errorf("%w: nil identifier accessor", ErrConfig)
	}
	strategy, err := newStrategy[T, I](cfg)
	if err != nil {
		return nil, err
	}

	cfg = cfg.normalize()
	cfg.HeuristicSize = heur.Len()
	logutil.Debug("unionfind: created %s", cfg.String())
	return &UnionFind[T, I]{
		arrays:   Arrays[T, I]{Rep: rep, Heur: heur, ID: id},
		strategy: strategy,
		cfg:      cfg,
	}, nil
}

// Union 合并 a 和 b 所在的组，已经连通时什么都不做
func (uf *UnionFind[T, I]) Union(a, b I) error {
	return uf.strategy.Union(&uf.arrays, a, b)
}

// Find 返回 a 所在组的代表元
func (uf *UnionFind[T, I]) Find(a I) (T, error) {
	return uf.strategy.Find(&uf.arrays, a)
}

// FindID 返回 a 所在组代表元的标识符
func (uf *UnionFind[T, I]) FindID(a I) (I, error) {
	v, err := uf.Find(a)
	if err != nil {
		return 0, err
	}
	return uf.arrays.ID(v), nil
}

// Connected 判断 a 和 b 是否在同一个组
func (uf *UnionFind[T, I]) Connected(a, b I) (bool, error) {
	return uf.strategy.Connected(&uf.arrays, a, b)
}

// Len 返回全集大小 N
func (uf *UnionFind[T, I]) Len() int { return uf.arrays.Rep.Len() }

// Config 返回构造时的配置(已补齐默认值)
func (uf *UnionFind[T, I]) Config() Config { return uf.cfg }

// Representative 返回代表元数组的拷贝
func (uf *UnionFind[T, I]) Representative() []T { return uf.arrays.Rep.Values() }

// Heuristic 返回启发式数组的拷贝，不使用时为空切片
func (uf *UnionFind[T, I]) Heuristic() []uint { return uf.arrays.Heur.Values() }

// Parents 返回每个位置的父节点(Quick-Find 下为组标识)的位置
func (uf *UnionFind[T, I]) Parents() ([]int, error) {
	n := uf.Len()
	parents := make([]int, n)
	for i := 0; i < n; i++ {
		_, p, err := lookup(&uf.arrays, i)
		if err != nil {
			return nil, err
		}
		parents[i] = p
	}
	return parents, nil
}
