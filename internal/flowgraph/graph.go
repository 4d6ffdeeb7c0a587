package flowgraph

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FlowGraph is the finalized node/edge list. Sources, Targets and Values are
// aligned: edge i goes from Labels[Sources[i]] to Labels[Targets[i]].
type FlowGraph struct {
	Labels     []string          `json:"labels"`
	Sources    []int             `json:"sources"`
	Targets    []int             `json:"targets"`
	Values     []decimal.Decimal `json:"values"`
	NodeValues []decimal.Decimal `json:"nodeValues"`

	index map[string]int
}

func newFlowGraph(labels []string, edges []edge) *FlowGraph {
	g := &FlowGraph{
		Labels:     append([]string(nil), labels...),
		Sources:    make([]int, len(edges)),
		Targets:    make([]int, len(edges)),
		Values:     make([]decimal.Decimal, len(edges)),
		NodeValues: make([]decimal.Decimal, len(labels)),
		index:      make(map[string]int, len(labels)),
	}
	for i, label := range g.Labels {
		g.index[label] = i
	}

	inflow := make([]decimal.Decimal, len(labels))
	outflow := make([]decimal.Decimal, len(labels))
	for i, e := range edges {
		g.Sources[i] = e.source
		g.Targets[i] = e.target
		g.Values[i] = e.value
		outflow[e.source] = outflow[e.source].Add(e.value)
		inflow[e.target] = inflow[e.target].Add(e.value)
	}
	for i := range g.NodeValues {
		g.NodeValues[i] = decimal.Max(inflow[i], outflow[i])
	}
	return g
}

// Index returns the position of label in Labels.
func (g *FlowGraph) Index(label string) (int, bool) {
	if g.index != nil {
		i, ok := g.index[label]
		return i, ok
	}
	for i, l := range g.Labels {
		if l == label {
			return i, true
		}
	}
	return -1, false
}

// EdgeCount returns the number of edges.
func (g *FlowGraph) EdgeCount() int {
	return len(g.Values)
}

// Edge returns the value of the edge between two labels.
func (g *FlowGraph) Edge(source, target string) (decimal.Decimal, bool) {
	src, ok := g.Index(source)
	if !ok {
		return decimal.Zero, false
	}
	tgt, ok := g.Index(target)
	if !ok {
		return decimal.Zero, false
	}
	for i := range g.Values {
		if g.Sources[i] == src && g.Targets[i] == tgt {
			return g.Values[i], true
		}
	}
	return decimal.Zero, false
}

// Inflow sums the values of edges ending at label.
func (g *FlowGraph) Inflow(label string) decimal.Decimal {
	return g.sumWhere(label, g.Targets)
}

// Outflow sums the values of edges starting at label.
func (g *FlowGraph) Outflow(label string) decimal.Decimal {
	return g.sumWhere(label, g.Sources)
}

func (g *FlowGraph) sumWhere(label string, ends []int) decimal.Decimal {
	total := decimal.Zero
	idx, ok := g.Index(label)
	if !ok {
		return total
	}
	for i, end := range ends {
		if end == idx {
			total = total.Add(g.Values[i])
		}
	}
	return total
}

// WithoutZeroEdges returns a copy without zero-value edges. Labels and their
// indices are unchanged, so nodes of empty categories stay in place.
func (g *FlowGraph) WithoutZeroEdges() *FlowGraph {
	out := &FlowGraph{
		Labels:     append([]string(nil), g.Labels...),
		Sources:    make([]int, 0, len(g.Sources)),
		Targets:    make([]int, 0, len(g.Targets)),
		Values:     make([]decimal.Decimal, 0, len(g.Values)),
		NodeValues: append([]decimal.Decimal(nil), g.NodeValues...),
		index:      g.index,
	}
	for i, v := range g.Values {
		if v.IsZero() {
			continue
		}
		out.Sources = append(out.Sources, g.Sources[i])
		out.Targets = append(out.Targets, g.Targets[i])
		out.Values = append(out.Values, v)
	}
	return out
}

// DisplayLabels renders each label with its node value, e.g. "Food: 12.50 €".
func (g *FlowGraph) DisplayLabels(currency string) []string {
	out := make([]string, len(g.Labels))
	for i, label := range g.Labels {
		value := decimal.Zero
		if i < len(g.NodeValues) {
			value = g.NodeValues[i]
		}
		out[i] = strings.TrimSpace(fmt.Sprintf("%s: %s %s", label, value.StringFixed(2), currency))
	}
	return out
}

// FloatValues returns edge values as float64 for renderers that need numbers.
func (g *FlowGraph) FloatValues() []float64 {
	out := make([]float64, len(g.Values))
	for i, v := range g.Values {
		out[i] = v.InexactFloat64()
	}
	return out
}
