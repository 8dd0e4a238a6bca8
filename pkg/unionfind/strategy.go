package unionfind

// Arrays 把策略需要操作的两个数组和标识符访问器放在一起
type Arrays[T any, I Index] struct {
	Rep  Container[T]    // 代表元数组
	Heur Container[uint] // 启发式数组，不使用时为 Empty
	ID   func(T) I       // 从数组元素取出标识符
}

// Strategy 是并查集算法的统一接口
type Strategy[T any, I Index] interface {
	Find(arr *Arrays[T, I], a I) (T, error)
	Connected(arr *Arrays[T, I], a, b I) (bool, error)
	Union(arr *Arrays[T, I], a, b I) error
	// Heuristic 返回合并时使用的连接策略，Quick-Find 返回 nil
	Heuristic() Heuristic
	Name() string
}

// lookup 读取位置 pos 上的元素，并把它的标识符换算成位置
func lookup[T any, I Index](arr *Arrays[T, I], pos int) (T, int, error) {
	v, err := arr.Rep.At(pos)
	if err != nil {
		return v, 0, err
	}
	next, err := Position(arr.ID(v), arr.Rep.Len())
	if err != nil {
		return v, 0, err
	}
	return v, next, nil
}
