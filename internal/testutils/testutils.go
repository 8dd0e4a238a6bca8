package testutils

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// Pair 一次合并操作的两个元素
type Pair struct {
	A, B int
}

// RandomPairs 用固定的种子生成可以复现的合并序列
func RandomPairs(seed int64, n, count int) []Pair {
	r := rand.New(rand.NewSource(seed))
	out := make([]Pair, count)
	for i := range out {
		out[i] = Pair{A: r.Intn(n), B: r.Intn(n)}
	}
	return out
}

// ConnectedFunc 判断两个位置是否连通
type ConnectedFunc func(a, b int) (bool, error)

// AssertEquivalence 检查连通关系是等价关系：自反、对称、传递
// 复杂度 O(N^3)，只用于小规模全集
func AssertEquivalence(t *testing.T, n int, connected ConnectedFunc) {
	t.Helper()
	rel := make([][]bool, n)
	for a := 0; a < n; a++ {
		rel[a] = make([]bool, n)
		for b := 0; b < n; b++ {
			ok, err := connected(a, b)
			if err != nil {
				t.Fatalf("connected(%d, %d): %v", a, b, err)
			}
			rel[a][b] = ok
		}
	}
	for a := 0; a < n; a++ {
		if !rel[a][a] {
			t.Fatalf("reflexivity broken at %d", a)
		}
		for b := 0; b < n; b++ {
			if rel[a][b] != rel[b][a] {
				t.Fatalf("symmetry broken at (%d, %d)", a, b)
			}
			if !rel[a][b] {
				continue
			}
			for c := 0; c < n; c++ {
				if rel[b][c] && !rel[a][c] {
					t.Fatalf("transitivity broken at (%d, %d, %d)", a, b, c)
				}
			}
		}
	}
}

// AssertAcyclic 检查从任意位置出发最多 N 步走到根
func AssertAcyclic(t *testing.T, parents []int) {
	t.Helper()
	n := len(parents)
	for i := range parents {
		x := i
		steps := 0
		for parents[x] != x {
			if parents[x] < 0 || parents[x] >= n {
				t.Fatalf("parent %d of %d out of range", parents[x], x)
			}
			x = parents[x]
			steps++
			if steps > n {
				t.Fatalf("no root reached from %d within %d steps: %v", i, n, parents)
			}
		}
	}
}

// Partition 把连通关系整理成每个位置所属分量的最小成员，便于比较两种实现的划分是否相同
func Partition(t *testing.T, n int, connected ConnectedFunc) []int {
	t.Helper()
	out := make([]int, n)
	for a := 0; a < n; a++ {
		out[a] = a
		for b := 0; b < a; b++ {
			ok, err := connected(a, b)
			if err != nil {
				t.Fatalf("connected(%d, %d): %v", a, b, err)
			}
			if ok {
				out[a] = out[b]
				break
			}
		}
	}
	return out
}

// WriteTempFile 在测试临时目录写一个文件并返回路径
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入临时文件 %s 失败: %v", path, err)
	}
	return path
}
