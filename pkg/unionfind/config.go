package unionfind

import "fmt"

// Kind 选择并查集算法
type Kind string

const (
	KindQuickFind  Kind = "quickfind"
	KindQuickUnion Kind = "quickunion"
)

// 实现 pflag.Value 接口(String Set Type)，可以直接绑定到命令行选项
func (k *Kind) String() string { return string(*k) }

func (k *Kind) Set(val string) error {
	switch val {
	case string(KindQuickFind), "qf":
		*k = KindQuickFind
	case string(KindQuickUnion), "qu":
		*k = KindQuickUnion
	default:
		return fmt.Errorf("无效的 strategy 值: %s", val)
	}
	return nil
}

func (k *Kind) Type() string { return "strategy" }

// 列出所有的合法值
func (Kind) Values() []string {
	return []string{string(KindQuickFind), string(KindQuickUnion)}
}

// HeuristicKind 选择 Quick-Union 的连接策略
type HeuristicKind string

const (
	HeuristicUnweighted HeuristicKind = "unweighted"
	HeuristicRank       HeuristicKind = "rank"
	HeuristicSize       HeuristicKind = "size"
)

func (h *HeuristicKind) String() string { return string(*h) }

func (h *HeuristicKind) Set(val string) error {
	switch val {
	case string(HeuristicUnweighted), "none":
		*h = HeuristicUnweighted
	case string(HeuristicRank), "byrank":
		*h = HeuristicRank
	case string(HeuristicSize), "bysize":
		*h = HeuristicSize
	default:
		return fmt.Errorf("无效的 heuristic 值: %s", val)
	}
	return nil
}

func (h *HeuristicKind) Type() string { return "heuristic" }

func (HeuristicKind) Values() []string {
	return []string{string(HeuristicUnweighted), string(HeuristicRank), string(HeuristicSize)}
}

// Heuristic 把枚举值换成具体的连接策略
func (h HeuristicKind) Heuristic() (Heuristic, error) {
	switch h {
	case HeuristicUnweighted, "":
		return Unweighted{}, nil
	case HeuristicRank:
		return ByRank{}, nil
	case HeuristicSize:
		return BySize{}, nil
	}
	return nil, fmt.Errorf("%w: unknown heuristic %q", ErrConfig, string(h))
}

// Config 构造参数，构造后不可修改
type Config struct {
	Strategy        Kind
	Heuristic       HeuristicKind // 只对 Quick-Union 有意义
	PathCompression bool          // 只对 Quick-Union 有意义
	Size            int           // 全集大小 N
	HeuristicSize   int           // 启发式数组长度 M，0 表示按策略推导
}

// DefaultConfig 默认使用按秩合并 + 路径压缩的 Quick-Union
func DefaultConfig(n int) Config {
	return Config{
		Strategy:        KindQuickUnion,
		Heuristic:       HeuristicRank,
		PathCompression: true,
		Size:            n,
	}
}

// normalize 补齐空字段
func (c Config) normalize() Config {
	if c.Strategy == "" {
		c.Strategy = KindQuickUnion
	}
	if c.Heuristic == "" {
		if c.Strategy == KindQuickFind {
			c.Heuristic = HeuristicUnweighted
		} else {
			c.Heuristic = HeuristicRank
		}
	}
	return c
}

// RequiredHeuristicSize 返回该配置需要的启发式数组长度 M
func (c Config) RequiredHeuristicSize() int {
	c = c.normalize()
	if c.Strategy == KindQuickFind || c.Heuristic == HeuristicUnweighted {
		return 0
	}
	return c.Size
}

// Validate 检查配置是否自洽
func (c Config) Validate() error {
	c = c.normalize()
	if c.Size <= 0 {
		return fmt.Errorf("%w: universe size %d", ErrConfig, c.Size)
	}
	switch c.Strategy {
	case KindQuickFind:
		if c.Heuristic != HeuristicUnweighted {
			return fmt.Errorf("%w: quickfind does not take heuristic %q", ErrConfig, string(c.Heuristic))
		}
	case KindQuickUnion:
		if _, err := c.Heuristic.Heuristic(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrConfig, string(c.Strategy))
	}
	if c.HeuristicSize != 0 && c.HeuristicSize != c.RequiredHeuristicSize() {
		return fmt.Errorf("%w: heuristic size %d, want %d",
			ErrConfig, c.HeuristicSize, c.RequiredHeuristicSize())
	}
	return nil
}

func (c Config) String() string {
	c = c.normalize()
	if c.Strategy == KindQuickFind {
		return fmt.Sprintf("quickfind(n=%d)", c.Size)
	}
	return fmt.Sprintf("quickunion(n=%d, heuristic=%s, compress=%t)", c.Size, c.Heuristic, c.PathCompression)
}

// newStrategy 按配置组装策略，调用前必须 Validate
func newStrategy[T any, I Index](c Config) (Strategy[T, I], error) {
	c = c.normalize()
	if c.Strategy == KindQuickFind {
		return QuickFind[T, I]{}, nil
	}
	h, err := c.Heuristic.Heuristic()
	if err != nil {
		return nil, err
	}
	return NewQuickUnion[T, I](h, c.PathCompression), nil
}
