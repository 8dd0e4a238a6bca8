// Package forestprint 把代表元数组画成字符树
package forestprint

import (
	"fmt"
	"strings"

	"disjoint_tool/pkg/groups"
)

const (
	StyleASCII   = 0
	StyleUnicode = 1
)

// Node 森林中的一个位置，Children 按位置升序
type Node struct {
	Pos      int
	Children []*Node
}

// Build 由父指针构造森林，返回所有的根(按位置升序)
func Build(parents []int) ([]*Node, error) {
	// 先确认无环，避免下面挂节点时死循环
	if _, err := groups.Roots(parents); err != nil {
		return nil, err
	}
	nodes := make([]*Node, len(parents))
	for i := range parents {
		nodes[i] = &Node{Pos: i}
	}
	var roots []*Node
	for i, p := range parents {
		if p == i {
			roots = append(roots, nodes[i])
			continue
		}
		nodes[p].Children = append(nodes[p].Children, nodes[i])
	}
	return roots, nil
}

// Printer 打印配置
type Printer struct {
	Style int              // 0 = ascii, 1 = unicode
	Label func(int) string // 可选的自定义格式化函数，默认打印位置
	// SkipSingletons 为 true 时不打印只有一个元素的树
	SkipSingletons bool
}

// Print 打印整片森林，每棵树以根开头
func (p Printer) Print(roots []*Node) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}

	connector, branch, space := "'-- ", ".-- ", "|   "
	if p.Style == StyleUnicode {
		connector, branch, space = "└── ", "├── ", "│   "
	}
	label := p.Label
	if label == nil {
		label = func(pos int) string { return fmt.Sprintf("%d", pos) }
	}

	var b strings.Builder
	var dfs func(node *Node, prefix string, isLast bool)
	dfs = func(node *Node, prefix string, isLast bool) {
		if isLast {
			fmt.Fprintf(&b, "%s%s%s\n", prefix, connector, label(node.Pos))
		} else {
			fmt.Fprintf(&b, "%s%s%s\n", prefix, branch, label(node.Pos))
		}
		for i, child := range node.Children {
			newPrefix := prefix
			if isLast {
				newPrefix += "    "
			} else {
				newPrefix += space
			}
			dfs(child, newPrefix, i == len(node.Children)-1)
		}
	}

	for _, root := range roots {
		if p.SkipSingletons && len(root.Children) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", label(root.Pos))
		for i, child := range root.Children {
			dfs(child, "", i == len(root.Children)-1)
		}
	}
	return b.String()
}

// PrintParents 构造并打印，出错时返回错误描述
func (p Printer) PrintParents(parents []int) (string, error) {
	roots, err := Build(parents)
	if err != nil {
		return "", err
	}
	return p.Print(roots), nil
}
