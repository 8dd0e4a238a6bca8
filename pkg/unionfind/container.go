package unionfind

import "fmt"

// Container 是代表元数组和启发式数组的统一访问契约
// 策略层只依赖这个接口，不关心底层内存是自有、借用还是有界缓冲区
type Container[E any] interface {
	Len() int
	At(i int) (E, error)
	Set(i int, v E) error
	// Values 返回内容的拷贝，只用于查看
	Values() []E
}

func checkPos(i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Value: uint64(i), Len: n}
	}
	return nil
}

// Fixed 自有的定长数组，构造后长度不再变化
type Fixed[E any] struct {
	data []E
}

// NewFixed 创建长度为 n 的定长数组，seed 为 nil 时元素取零值
func NewFixed[E any](n int, seed func(i int) E) *Fixed[E] {
	f := &Fixed[E]{data: make([]E, n)}
	if seed != nil {
		for i := range f.data {
			f.data[i] = seed(i)
		}
	}
	return f
}

func (f *Fixed[E]) Len() int { return len(f.data) }

func (f *Fixed[E]) At(i int) (E, error) {
	if err := checkPos(i, len(f.data)); err != nil {
		var zero E
		return zero, err
	}
	return f.data[i], nil
}

func (f *Fixed[E]) Set(i int, v E) error {
	if err := checkPos(i, len(f.data)); err != nil {
		return err
	}
	f.data[i] = v
	return nil
}

func (f *Fixed[E]) Values() []E {
	out := make([]E, len(f.data))
	copy(out, f.data)
	return out
}

// Borrowed 借用调用者的内存，不做任何初始化
// 在引擎生命周期内调用者不得在外部修改这块内存
type Borrowed[E any] struct {
	buf []E
}

func NewBorrowed[E any](buf []E) *Borrowed[E] {
	return &Borrowed[E]{buf: buf}
}

func (b *Borrowed[E]) Len() int { return len(b.buf) }

func (b *Borrowed[E]) At(i int) (E, error) {
	if err := checkPos(i, len(b.buf)); err != nil {
		var zero E
		return zero, err
	}
	return b.buf[i], nil
}

func (b *Borrowed[E]) Set(i int, v E) error {
	if err := checkPos(i, len(b.buf)); err != nil {
		return err
	}
	b.buf[i] = v
	return nil
}

func (b *Borrowed[E]) Values() []E {
	out := make([]E, len(b.buf))
	copy(out, b.buf)
	return out
}

// Bounded 有容量上限的缓冲区，调用者先逐个 Push 构建，再交给引擎
// 内存一次性按容量分配，之后永远不会扩容
type Bounded[E any] struct {
	data []E
}

func NewBounded[E any](capacity int) *Bounded[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded[E]{data: make([]E, 0, capacity)}
}

func (b *Bounded[E]) Cap() int { return cap(b.data) }

// Push 在尾部追加一个元素，满了返回 ErrCapacity
func (b *Bounded[E]) Push(v E) error {
	if len(b.data) == cap(b.data) {
		return fmt.Errorf("%w: push beyond %d", ErrCapacity, cap(b.data))
	}
	b.data = append(b.data, v)
	return nil
}

// Resize 调整长度，新增的位置用 fill 填充
func (b *Bounded[E]) Resize(n int, fill E) error {
	if n < 0 || n > cap(b.data) {
		return fmt.Errorf("%w: resize to %d, capacity %d", ErrCapacity, n, cap(b.data))
	}
	old := len(b.data)
	b.data = b.data[:n]
	for i := old; i < n; i++ {
		b.data[i] = fill
	}
	return nil
}

func (b *Bounded[E]) Len() int { return len(b.data) }

func (b *Bounded[E]) At(i int) (E, error) {
	if err := checkPos(i, len(b.data)); err != nil {
		var zero E
		return zero, err
	}
	return b.data[i], nil
}

func (b *Bounded[E]) Set(i int, v E) error {
	if err := checkPos(i, len(b.data)); err != nil {
		return err
	}
	b.data[i] = v
	return nil
}

func (b *Bounded[E]) Values() []E {
	out := make([]E, len(b.data))
	copy(out, b.data)
	return out
}

// Empty 显式的"没有启发式存储"，长度恒为 0
type Empty[E any] struct{}

func (Empty[E]) Len() int { return 0 }

func (Empty[E]) At(i int) (E, error) {
	var zero E
	return zero, &RangeError{Value: uint64(i), Len: 0}
}

func (Empty[E]) Set(i int, _ E) error {
	return &RangeError{Value: uint64(i), Len: 0}
}

func (Empty[E]) Values() []E { return []E{} }
