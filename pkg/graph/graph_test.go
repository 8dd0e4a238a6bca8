package graph_test

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"

	"disjoint_tool/pkg/graph"
)

func newTestGraph() *gographviz.Graph {
	g := gographviz.NewGraph()
	g.SetName("G")
	g.SetDir(true)
	return g
}

func TestHasCycleDFS(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]string
		wantCycle bool
		wantStart string
	}{
		{
			name: "no cycle",
			edges: [][2]string{
				{"A", "B"},
				{"B", "C"},
			},
			wantCycle: false,
		},
		{
			name: "simple cycle A→B→C→A",
			edges: [][2]string{
				{"A", "B"},
				{"B", "C"},
				{"C", "A"},
			},
			wantCycle: true,
			wantStart: "A",
		},
		{
			name: "self loop",
			edges: [][2]string{
				{"X", "X"},
			},
			wantCycle: true,
			wantStart: "X",
		},
		{
			name:      "empty graph",
			edges:     nil,
			wantCycle: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph()
			nodeSet := make(map[string]bool)
			for _, e := range tt.edges {
				for _, n := range e {
					if !nodeSet[n] {
						g.AddNode("G", n, nil)
						nodeSet[n] = true
					}
				}
			}
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1], true, nil)
			}

			gotCycle, gotStart := graph.HasCycleDFS(g)
			if gotCycle != tt.wantCycle {
				t.Errorf("HasCycleDFS() = %v, want %v", gotCycle, tt.wantCycle)
			}
			if tt.wantCycle && gotStart != tt.wantStart {
				t.Errorf("cycle start = %s, want %s", gotStart, tt.wantStart)
			}
		})
	}
}

func TestFromParentsDOT(t *testing.T) {
	names := []string{"Zurich", "Munich", "Paris"}
	g, err := graph.FromParents([]int{0, 2, 2}, func(i int) string { return names[i] })
	if err != nil {
		t.Fatalf("FromParents: %v", err)
	}
	dot := g.String()
	for _, want := range []string{"n1->n2", `"Munich"`, "doublecircle"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "n2->n2") {
		t.Errorf("root self loop should not be drawn:\n%s", dot)
	}

	// 导出的 DOT 可以被重新解析
	back, err := gographviz.Read([]byte(dot))
	if err != nil {
		t.Fatalf("re-read DOT: %v", err)
	}
	if len(back.Nodes.Nodes) != 3 {
		t.Errorf("expected 3 nodes, got %d", len(back.Nodes.Nodes))
	}
}

func TestCheckForest(t *testing.T) {
	if err := graph.CheckForest([]int{0, 1, 1, 1, 1, 1, 5, 5, 5, 5, 10, 1}); err != nil {
		t.Errorf("valid forest rejected: %v", err)
	}
	if err := graph.CheckForest([]int{1, 2, 0}); err == nil {
		t.Errorf("cycle not detected")
	}
	if err := graph.CheckForest([]int{0, 9}); err == nil {
		t.Errorf("out of range parent not detected")
	}
}

func TestPathToRoot(t *testing.T) {
	g, err := graph.FromParents([]int{0, 5, 1, 1, 1, 5}, nil)
	if err != nil {
		t.Fatalf("FromParents: %v", err)
	}
	adj := graph.ToAdjacencyMap(g)
	got := graph.FormatPath(graph.PathToRoot(adj, graph.NodeName(4)))
	if got != "n4 → n1 → n5" {
		t.Errorf("PathToRoot = %s", got)
	}
}
