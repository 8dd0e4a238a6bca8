package unionfind

// QuickUnion 代表元数组构成森林，查找沿父指针走到根，合并把一个根挂到另一个根下
// 连接策略和是否路径压缩在构造时确定，运行期间不变
type QuickUnion[T any, I Index] struct {
	heuristic Heuristic
	compress  bool
}

// NewQuickUnion 创建 Quick-Union 策略，h 为 nil 时使用 Unweighted
func NewQuickUnion[T any, I Index](h Heuristic, compress bool) QuickUnion[T, I] {
	if h == nil {
		h = Unweighted{}
	}
	return QuickUnion[T, I]{heuristic: h, compress: compress}
}

func (q QuickUnion[T, I]) Name() string { return "quickunion" }

func (q QuickUnion[T, I]) Heuristic() Heuristic { return q.heuristic }

// Compress 是否开启路径压缩
func (q QuickUnion[T, I]) Compress() bool { return q.compress }

// root 返回 a 所在树的根元素和根的位置
// 开启路径压缩时使用路径减半：每个经过的节点改指向它的祖父节点
func (q QuickUnion[T, I]) root(arr *Arrays[T, I], a I) (T, int, error) {
	n := arr.Rep.Len()
	var zero T
	pos, err := Position(a, n)
	if err != nil {
		return zero, 0, err
	}

	// 合法的森林从任意节点出发最多 N 步到根
	for steps := 0; steps <= n; steps++ {
		v, parent, err := lookup(arr, pos)
		if err != nil {
			return zero, 0, err
		}
		if parent == pos {
			return v, pos, nil
		}
		if !q.compress {
			pos = parent
			continue
		}
		gv, grand, err := lookup(arr, parent)
		if err != nil {
			return zero, 0, err
		}
		if err := arr.Rep.Set(pos, gv); err != nil {
			return zero, 0, err
		}
		pos = grand
	}
	return zero, 0, ErrCorrupt
}

func (q QuickUnion[T, I]) Find(arr *Arrays[T, I], a I) (T, error) {
	v, _, err := q.root(arr, a)
	return v, err
}

func (q QuickUnion[T, I]) Connected(arr *Arrays[T, I], a, b I) (bool, error) {
	_, ra, err := q.root(arr, a)
	if err != nil {
		return false, err
	}
	_, rb, err := q.root(arr, b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Union 已经连通时什么都不做，否则交给连接策略决定方向
func (q QuickUnion[T, I]) Union(arr *Arrays[T, I], a, b I) error {
	_, ra, err := q.root(arr, a)
	if err != nil {
		return err
	}
	_, rb, err := q.root(arr, b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}

	parent, child, err := q.heuristic.Link(arr.Heur, ra, rb)
	if err != nil {
		return err
	}
	pv, err := arr.Rep.At(parent)
	if err != nil {
		return err
	}
	return arr.Rep.Set(child, pv)
}
