// Package graph 把代表元数组导出成 DOT 图，并在图上做环检测
package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
)

const GraphName = "forest"

// NodeName 返回位置对应的 DOT 节点名
func NodeName(pos int) string {
	return "n" + strconv.Itoa(pos)
}

// FromParents 把父指针画成有向图，边从子节点指向父节点
// 根的自环不画出来，根用双圈表示。label 为 nil 时标签是位置
func FromParents(parents []int, label func(int) string) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(GraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	if label == nil {
		label = strconv.Itoa
	}

	for i, p := range parents {
		attrs := map[string]string{"label": strconv.Quote(label(i))}
		if p == i {
			attrs["shape"] = "doublecircle"
		}
		if err := g.AddNode(GraphName, NodeName(i), attrs); err != nil {
			return nil, err
		}
	}
	for i, p := range parents {
		if p == i {
			continue
		}
		if p < 0 || p >= len(parents) {
			return nil, fmt.Errorf("graph: parent %d of %d out of range [0, %d)", p, i, len(parents))
		}
		if err := g.AddEdge(NodeName(i), NodeName(p), true, nil); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// HasCycleDFS 遍历有向图并判断是否存在至少一个环路（即图中存在某个节点能沿边最终回到自己）
// 它使用深度优先搜索（DFS）结合递归栈，检测是否存在回到当前递归路径中的“祖先节点”
// 若发现环，将返回 true，并返回首次形成闭环的起点节点名称
func HasCycleDFS(graph *gographviz.Graph) (bool, string) {
	visited := make(map[string]bool)  // 标记是否访问过节点，避免重复访问
	recStack := make(map[string]bool) // 当前 DFS 路径中的节点（递归栈）

	var dfs func(string) bool
	dfs = func(node string) bool {
		if recStack[node] {
			return true
		}
		if visited[node] {
			return false
		}
		visited[node] = true
		recStack[node] = true

		for _, dst := range graph.Edges.SrcToDsts[node] {
			for _, edge := range dst {
				if dfs(edge.Dst) {
					return true
				}
			}
		}
		recStack[node] = false
		return false
	}

	// 遍历所有节点作为起点（森林不一定连通）
	for _, node := range graph.Nodes.Nodes {
		if dfs(node.Name) {
			return true, node.Name
		}
	}
	return false, ""
}

// CheckForest 检查父指针是否构成森林：除根的自环外没有环
func CheckForest(parents []int) error {
	g, err := FromParents(parents, nil)
	if err != nil {
		return err
	}
	if cyclic, start := HasCycleDFS(g); cyclic {
		return fmt.Errorf("graph: cycle reachable from %s", start)
	}
	return nil
}

// ToAdjacencyMap 将 gographviz.Graph 图结构转换为邻接表形式
func ToAdjacencyMap(g *gographviz.Graph) map[string][]string {
	adj := make(map[string][]string)
	for src, dstGroup := range g.Edges.SrcToDsts {
		for _, edges := range dstGroup {
			for _, edge := range edges {
				adj[src] = append(adj[src], edge.Dst)
			}
		}
	}
	return adj
}

// PathToRoot 在邻接表上从 node 一直走到没有出边的节点，用于展示查找路径
func PathToRoot(adj map[string][]string, node string) []string {
	path := []string{node}
	seen := map[string]bool{node: true}
	for len(adj[node]) > 0 {
		node = adj[node][0]
		if seen[node] {
			break
		}
		seen[node] = true
		path = append(path, node)
	}
	return path
}

// FormatPath 将一段路径（如 [n4, n1, n5]）格式化为 "n4 → n1 → n5"
func FormatPath(path []string) string {
	return strings.Join(path, " → ")
}
