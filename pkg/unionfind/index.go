package unionfind

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Index 是元素标识符的类型约束：任意无符号整数
// 可比较、可排序、可以无损换算成数组位置
type Index interface {
	constraints.Unsigned
}

// Position 把标识符换算成数组位置，越界时返回 *RangeError
// 检查放在数组访问的边界上，不做截断也不回绕
func Position[I Index](id I, n int) (int, error) {
	v := uint64(id)
	if n <= 0 || v >= uint64(n) {
		return 0, &RangeError{Value: v, Len: n}
	}
	return int(v), nil
}

// FromPosition 把数组位置换回标识符，标识符类型放不下时返回 *RangeError
func FromPosition[I Index](pos int) (I, error) {
	if pos < 0 {
		return 0, &RangeError{Value: uint64(pos), Len: 0}
	}
	id := I(pos)
	if uint64(id) != uint64(pos) {
		limit := math.MaxInt
		if m := uint64(maxOf[I]()); m < math.MaxInt {
			limit = int(m) + 1
		}
		return 0, &RangeError{Value: uint64(pos), Len: limit}
	}
	return id, nil
}

// Successor 返回 c+1，按秩合并时用来把秩加一
func Successor[I Index](c I) I {
	return c + 1
}

// maxOf 返回类型 I 的最大值
func maxOf[I Index]() I {
	var zero I
	return ^zero
}

// Fits 判断大小为 n 的全集能否用类型 I 的标识符表示
func Fits[I Index](n int) bool {
	if n <= 0 {
		return false
	}
	return uint64(n-1) <= uint64(maxOf[I]())
}
