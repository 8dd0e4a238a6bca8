package unionfind

// Heuristic 是 Quick-Union 合并两棵树时的连接策略
// 只在两个不同的根上被调用，按数组位置工作，与元素类型无关
type Heuristic interface {
	// Seed 返回启发式数组的初始值，第二个返回值为 false 表示不需要启发式数组
	Seed() (uint, bool)
	// Link 决定哪个根留下(parent)，哪个根挂到它下面(child)，并更新启发式数组
	Link(h Container[uint], a, b int) (parent, child int, err error)
	Name() string
}

// Unweighted 无条件把 a 挂到 b 下面，不使用启发式数组
type Unweighted struct{}

func (Unweighted) Seed() (uint, bool) { return 0, false }

func (Unweighted) Link(_ Container[uint], a, b int) (int, int, error) {
	return b, a, nil
}

func (Unweighted) Name() string { return "unweighted" }

// ByRank 按秩合并：秩小的树挂到秩大的树下面，秩相等时留下 a 并把它的秩加一
// 秩只在根上有意义，被挂走的根上留下的旧值不会再被读取
type ByRank struct{}

func (ByRank) Seed() (uint, bool) { return 0, true }

func (ByRank) Link(h Container[uint], a, b int) (int, int, error) {
	ra, err := h.At(a)
	if err != nil {
		return 0, 0, err
	}
	rb, err := h.At(b)
	if err != nil {
		return 0, 0, err
	}
	if ra < rb {
		a, b = b, a
		ra, rb = rb, ra
	}
	if ra == rb {
		if err := h.Set(a, Successor(ra)); err != nil {
			return 0, 0, err
		}
	}
	return a, b, nil
}

func (ByRank) Name() string { return "rank" }

// BySize 按大小合并：小树挂到大树下面，大小相等时留下 a
type BySize struct{}

func (BySize) Seed() (uint, bool) { return 1, true }

func (BySize) Link(h Container[uint], a, b int) (int, int, error) {
	sa, err := h.At(a)
	if err != nil {
		return 0, 0, err
	}
	sb, err := h.At(b)
	if err != nil {
		return 0, 0, err
	}
	if sa < sb {
		a, b = b, a
		sa, sb = sb, sa
	}
	if err := h.Set(a, sa+sb); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (BySize) Name() string { return "size" }
