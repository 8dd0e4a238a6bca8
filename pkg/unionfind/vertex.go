package unionfind

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// Vertex 是携带自定义数据的数组元素，通过 ID 取得自己的标识符
// 例如 城市名 + 费用 直接作为代表元数组的元素存放
type Vertex[I Index] interface {
	ID() I
}

// ValidateVertices 检查记录的标识符是否恰好是 0..N 的恒等排列
func ValidateVertices[T Vertex[I], I Index](records []T) error {
	for i, r := range records {
		pos, err := Position(r.ID(), len(records))
		if err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrInvalidData, i, err)
		}
		if pos != i {
			return fmt.Errorf("%w: record at %d has id %d", ErrInvalidData, i, pos)
		}
	}
	return nil
}

// NewVertices 用调用者提供的记录创建引擎，记录会被拷贝到自有数组中
// 调用时需要显式写出类型参数，例如 NewVertices[City, uint32](cfg, cities)
func NewVertices[T Vertex[I], I Index](cfg Config, records []T) (*UnionFind[T, I], error) {
	if cfg.Size == 0 {
		cfg.Size = len(records)
	}
	if len(records) != cfg.Size {
		return nil, fmt.Errorf("%w: %d records, universe size %d", ErrConfig, len(records), cfg.Size)
	}
	if err := ValidateVertices[T, I](records); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rep := NewFixed(len(records), func(i int) T { return records[i] })
	return FromContainers(cfg, func(v T) I { return v.ID() }, rep, newHeuristicStore(cfg))
}

// Records 返回代表元数组的深拷贝，记录里的指针数据也不会和引擎共享
// 深拷贝只处理导出字段
func (uf *UnionFind[T, I]) Records() []T {
	values := uf.arrays.Rep.Values()
	return deepcopy.Copy(values).([]T)
}
