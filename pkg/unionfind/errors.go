package unionfind

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange 元素标识符换算出的数组位置 >= N
	ErrOutOfRange = errors.New("unionfind: identifier out of range")
	// ErrInvalidData 调用者提供的初始数据不是 0..N 的排列
	ErrInvalidData = errors.New("unionfind: invalid initial data")
	// ErrConfig 构造参数不匹配(策略/启发式/数组长度)
	ErrConfig = errors.New("unionfind: configuration mismatch")
	// ErrCapacity 有界缓冲区超过容量上限
	ErrCapacity = errors.New("unionfind: capacity exceeded")
	// ErrCorrupt 借用的缓冲区中父指针成环
	ErrCorrupt = errors.New("unionfind: corrupt representative array")
)

// RangeError 记录越界的具体值，errors.Is(err, ErrOutOfRange) 为真
type RangeError struct {
	Value uint64 // 越界的标识符或位置
	Len   int    // 数组长度
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("unionfind: identifier %d out of range [0, %d)", e.Value, e.Len)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
