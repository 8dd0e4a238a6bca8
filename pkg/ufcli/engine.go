package ufcli

import (
	"fmt"
	"strconv"

	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/groups"
	"disjoint_tool/pkg/unionfind"
)

// Engine 是去掉类型参数的引擎视图，操作数统一用 uint64 传递
// 超出具体位宽的值按越界处理
type Engine interface {
	Union(a, b uint64) error
	Find(a uint64) (uint64, error)
	Connected(a, b uint64) (bool, error)
	Representative() []uint64
	Heuristic() []uint
	Parents() ([]int, error)
	Len() int
	Config() unionfind.Config
}

type engine[T any, I unionfind.Index] struct {
	uf *unionfind.UnionFind[T, I]
	id func(T) I
}

func (e engine[T, I]) index(v uint64) (I, error) {
	id := I(v)
	if uint64(id) != v {
		return 0, &unionfind.RangeError{Value: v, Len: e.uf.Len()}
	}
	return id, nil
}

func (e engine[T, I]) Union(a, b uint64) error {
	ia, err := e.index(a)
	if err != nil {
		return err
	}
	ib, err := e.index(b)
	if err != nil {
		return err
	}
	return e.uf.Union(ia, ib)
}

func (e engine[T, I]) Find(a uint64) (uint64, error) {
	ia, err := e.index(a)
	if err != nil {
		return 0, err
	}
	root, err := e.uf.FindID(ia)
	return uint64(root), err
}

func (e engine[T, I]) Connected(a, b uint64) (bool, error) {
	ia, err := e.index(a)
	if err != nil {
		return false, err
	}
	ib, err := e.index(b)
	if err != nil {
		return false, err
	}
	return e.uf.Connected(ia, ib)
}

func (e engine[T, I]) Representative() []uint64 {
	values := e.uf.Representative()
	out := make([]uint64, len(values))
	for i, v := range values {
		out[i] = uint64(e.id(v))
	}
	return out
}

func (e engine[T, I]) Heuristic() []uint { return e.uf.Heuristic() }
func (e engine[T, I]) Parents() ([]int, error) { return e.uf.Parents() }
func (e engine[T, I]) Len() int { return e.uf.Len() }
func (e engine[T, I]) Config() unionfind.Config { return e.uf.Config() }

func identity[I unionfind.Index](v I) I { return v }

func newIntEngine[I unionfind.Index](cfg unionfind.Config) (Engine, error) {
	uf, err := unionfind.New[I](cfg)
	if err != nil {
		return nil, err
	}
	return engine[I, I]{uf: uf, id: identity[I]}, nil
}

// Widths 列出支持的标识符位宽
func Widths() []int { return []int{8, 16, 32, 64} }

// NewEngine 按位宽创建整数引擎
func NewEngine(cfg unionfind.Config, width int) (Engine, error) {
	switch width {
	case 8:
		return newIntEngine[uint8](cfg)
	case 16:
		return newIntEngine[uint16](cfg)
	case 32:
		return newIntEngine[uint32](cfg)
	case 64:
		return newIntEngine[uint64](cfg)
	}
	return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
		fmt.Sprintf("不支持的位宽 %d，可选 %v", width, Widths()), nil)
}

// Session 一次命令执行用到的引擎，顶点模式下还带着名字索引
type Session struct {
	Engine
	Names    *groups.NameIndex // 只在顶点模式下非空
	vertices *unionfind.UnionFind[Vertex, uint32]
}

// NewSession 创建整数模式的会话
func NewSession(cfg unionfind.Config, width int) (*Session, error) {
	eng, err := NewEngine(cfg, width)
	if err != nil {
		return nil, errorutil.FromEngineError("创建引擎失败", err)
	}
	return &Session{Engine: eng}, nil
}

// NewVertexSession 用顶点记录创建会话，cfg.Size 为 0 时取记录个数
func NewVertexSession(cfg unionfind.Config, records []Vertex) (*Session, error) {
	names := groups.NewNameIndex()
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		if err := names.Add(r.Name, int(r.Key)); err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "顶点名重复", err)
		}
	}
	uf, err := unionfind.NewVertices[Vertex, uint32](cfg, records)
	if err != nil {
		return nil, errorutil.FromEngineError("创建顶点引擎失败", err)
	}
	return &Session{
		Engine:   engine[Vertex, uint32]{uf: uf, id: func(v Vertex) uint32 { return v.ID() }},
		Names:    names,
		vertices: uf,
	}, nil
}

// Vertices 返回顶点模式下代表元数组里的记录，整数模式返回 nil
func (s *Session) Vertices() []Vertex {
	if s.vertices == nil {
		return nil
	}
	return s.vertices.Records()
}

// Resolve 把操作数解析为标识符，先查顶点名，再按十进制数字解析
func (s *Session) Resolve(arg string) (uint64, error) {
	if s.Names != nil {
		if pos, ok := s.Names.Lookup(arg); ok {
			return uint64(pos), nil
		}
	}
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
			fmt.Sprintf("无法解析操作数 %q", arg), err)
	}
	return v, nil
}

// Label 位置的显示名，顶点模式下是 名字(位置)
func (s *Session) Label(pos int) string {
	if s.Names != nil {
		if name := s.Names.Name(pos); name != "" {
			return fmt.Sprintf("%s(%d)", name, pos)
		}
	}
	return strconv.Itoa(pos)
}
