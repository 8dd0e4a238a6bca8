package unionfind

// QuickFind 每个元素直接记录所在组的标识，查找 O(1)，合并 O(N)
type QuickFind[T any, I Index] struct{}

func (QuickFind[T, I]) Name() string { return "quickfind" }

func (QuickFind[T, I]) Heuristic() Heuristic { return nil }

func (QuickFind[T, I]) find(arr *Arrays[T, I], a I) (T, int, error) {
	pos, err := Position(a, arr.Rep.Len())
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return lookup(arr, pos)
}

func (q QuickFind[T, I]) Find(arr *Arrays[T, I], a I) (T, error) {
	v, _, err := q.find(arr, a)
	return v, err
}

func (q QuickFind[T, I]) Connected(arr *Arrays[T, I], a, b I) (bool, error) {
	_, ga, err := q.find(arr, a)
	if err != nil {
		return false, err
	}
	_, gb, err := q.find(arr, b)
	if err != nil {
		return false, err
	}
	return ga == gb, nil
}

// Union 把当前等于 a 所在组标识的所有位置改写成 b 所在组的标识
func (q QuickFind[T, I]) Union(arr *Arrays[T, I], a, b I) error {
	_, ga, err := q.find(arr, a)
	if err != nil {
		return err
	}
	vb, gb, err := q.find(arr, b)
	if err != nil {
		return err
	}
	if ga == gb {
		return nil
	}

	// 先确认整个数组都是合法标识，再开始改写，避免改到一半失败
	n := arr.Rep.Len()
	for i := 0; i < n; i++ {
		if _, _, err := lookup(arr, i); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		_, g, _ := lookup(arr, i)
		if g != ga {
			continue
		}
		if err := arr.Rep.Set(i, vb); err != nil {
			return err
		}
	}
	return nil
}
