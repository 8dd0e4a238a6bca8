package ufcli

import (
	"fmt"
	"strconv"
	"strings"

	"disjoint_tool/pkg/diffutil"
	"disjoint_tool/pkg/forestprint"
	"disjoint_tool/pkg/graph"
	"disjoint_tool/pkg/groups"

	"github.com/dustin/go-humanize"
)

// RenderArrays 按列对齐打印 位置/显示名/代表元/启发式 四列
func RenderArrays(s *Session) string {
	rep := s.Representative()
	heur := s.Heuristic()

	header := []string{"pos", "label", "rep", "heur"}
	rows := [][]string{header}
	for i, r := range rep {
		h := "-"
		if i < len(heur) {
			h = strconv.FormatUint(uint64(heur[i]), 10)
		}
		rows = append(rows, []string{strconv.Itoa(i), s.Label(i), strconv.FormatUint(r, 10), h})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for c, cell := range row {
			if w := diffutil.DisplayWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = diffutil.PadRight(cell, widths[c])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderForest 打印当前的森林，Quick-Find 下每个分量只有一层
func RenderForest(s *Session, style int) (string, error) {
	parents, err := s.Parents()
	if err != nil {
		return "", err
	}
	p := forestprint.Printer{Style: style, Label: s.Label}
	return p.PrintParents(parents)
}

// RenderShow 汇总信息、数组、分组和森林
func RenderShow(s *Session, style int) (string, error) {
	parents, err := s.Parents()
	if err != nil {
		return "", err
	}
	if err := graph.CheckForest(parents); err != nil {
		return "", err
	}
	gs, err := groups.FromParents(parents)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Config())
	fmt.Fprintf(&b, "%s elements, %s groups\n\n", humanize.Comma(int64(s.Len())), humanize.Comma(int64(len(gs))))
	b.WriteString(RenderArrays(s))
	b.WriteString("\ngroups:\n")
	for _, g := range gs {
		labels := make([]string, len(g.Members))
		for i, m := range g.Members {
			labels[i] = s.Label(m)
		}
		fmt.Fprintf(&b, "  %s: %s\n", s.Label(g.Root), strings.Join(labels, " "))
	}

	forest, err := forestprint.Printer{Style: style, Label: s.Label, SkipSingletons: true}.PrintParents(parents)
	if err != nil {
		return "", err
	}
	if forest != "" {
		b.WriteString("\nforest:\n")
		b.WriteString(forest)
	}
	return b.String(), nil
}

// RenderDOT 输出 graphviz 描述
func RenderDOT(s *Session) (string, error) {
	parents, err := s.Parents()
	if err != nil {
		return "", err
	}
	g, err := graph.FromParents(parents, s.Label)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// RenderPath 打印一个位置到根的路径
func RenderPath(s *Session, pos int) (string, error) {
	parents, err := s.Parents()
	if err != nil {
		return "", err
	}
	g, err := graph.FromParents(parents, nil)
	if err != nil {
		return "", err
	}
	path := graph.PathToRoot(graph.ToAdjacencyMap(g), graph.NodeName(pos))
	for i, node := range path {
		n, err := strconv.Atoi(strings.TrimPrefix(node, "n"))
		if err == nil {
			path[i] = s.Label(n)
		}
	}
	return graph.FormatPath(path), nil
}

// Snapshot 一次操作前后要对比的状态
type Snapshot struct {
	Rep    []uint64
	Heur   []uint
	Forest string
}

func TakeSnapshot(s *Session, style int) (Snapshot, error) {
	forest, err := RenderForest(s, style)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Rep: s.Representative(), Heur: s.Heuristic(), Forest: forest}, nil
}

// RenderTraceStep 描述一次操作引起的变化:
// 改动过的槽位，以及森林的左右对比(森林没有变化时省略)
func RenderTraceStep(s *Session, res Result, before, after Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# line %d: %s\n", res.Op.Line, s.Describe(res))

	repChanges := diffutil.CompareSlots(before.Rep, after.Rep)
	heurChanges := diffutil.CompareSlots(before.Heur, after.Heur)
	if len(repChanges) == 0 && len(heurChanges) == 0 {
		b.WriteString("  (no change)\n")
	}
	for _, c := range repChanges {
		fmt.Fprintf(&b, "  rep  %s\n", c)
	}
	for _, c := range heurChanges {
		fmt.Fprintf(&b, "  heur %s\n", c)
	}

	diff := diffutil.CompareMultiline(before.Forest, after.Forest)
	if diffutil.Changed(diff) {
		b.WriteString(diffutil.FormatSideBySide(diff, "before", "after"))
		b.WriteByte('\n')
	}
	return b.String()
}
