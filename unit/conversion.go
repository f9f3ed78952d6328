package unit

import (
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"
)

// Mapping is a single user-supplied measurement equivalence, e.g.
// "1 cup flour = 120 g".
type Mapping struct {
	A, B Measure
}

// edgeKey identifies a directed edge between two unit strings.
type edgeKey struct{ from, to string }

// Graph is a directed conversion graph: vertices are units, and for
// every mapping (A, B) there are two edges with reciprocal
// multiplicative factors, unless an identical-weight edge already
// exists. The underlying library graph carries connectivity/shortest
// path structure (by hop count); the true multiplicative factors are
// tracked in a side table because the graph library's edge weights are
// integer hop costs, not arbitrary-precision conversion ratios.
type Graph struct {
	g       graph.Graph[string, Unit]
	factors map[edgeKey]float64
}

func unitHash(u Unit) string { return u.String() + "|" + u.kind }

// BuildGraph constructs a Graph from a list of measurement mappings.
func BuildGraph(mappings []Mapping) *Graph {
	g := graph.New(unitHash, graph.Directed())
	cg := &Graph{g: g, factors: make(map[edgeKey]float64)}

	for _, mapping := range mappings {
		a := mapping.A.Normalize()
		b := mapping.B.Normalize()
		ua, ub := a.Unit(), b.Unit()
		haU := unitHash(ua)
		hbU := unitHash(ub)

		if _, err := g.Vertex(haU); err != nil {
			_ = g.AddVertex(ua)
		}
		if _, err := g.Vertex(hbU); err != nil {
			_ = g.AddVertex(ub)
		}

		aVal, _, _ := a.Values()
		bVal, _, _ := b.Values()
		if aVal == 0 {
			continue
		}
		abWeight := truncate3Decimals(bVal / aVal)

		if existing, ok := cg.factors[edgeKey{haU, hbU}]; ok && existing == abWeight {
			continue
		}
		cg.factors[edgeKey{haU, hbU}] = abWeight
		_ = g.AddEdge(haU, hbU)
		if bVal != 0 {
			baWeight := truncate3Decimals(aVal / bVal)
			cg.factors[edgeKey{hbU, haU}] = baWeight
			_ = g.AddEdge(hbU, haU)
		}
	}
	return cg
}

// PrintDOT renders the graph in Graphviz DOT format for debugging.
func (cg *Graph) PrintDOT() string {
	var b strings.Builder
	b.WriteString("digraph conversion {\n")
	for k, w := range cg.factors {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", k.from, k.to, fmt.Sprintf("%.3f", w))
	}
	b.WriteString("}\n")
	return b.String()
}

// ConvertViaMappings converts measure to a unit of the target kind
// using the shortest path (by hop count) through the graph built from
// mappings, multiplying the true conversion factors along that path.
// It returns ok=false when either endpoint is missing from the graph
// or no path connects them -- this is a normal, non-error outcome.
func ConvertViaMappings(measure Measure, target MeasureKind, mappings []Mapping) (Measure, bool) {
	cg := BuildGraph(mappings)
	input := measure.Normalize()
	uFrom := input.Unit()
	uTo := target.Unit().Normalize()

	hFrom, hTo := unitHash(uFrom), unitHash(uTo)
	if _, err := cg.g.Vertex(hFrom); err != nil {
		return Measure{}, false
	}
	if _, err := cg.g.Vertex(hTo); err != nil {
		return Measure{}, false
	}

	path, err := graph.ShortestPath(cg.g, hFrom, hTo)
	if err != nil || len(path) == 0 {
		return Measure{}, false
	}

	factor := 1.0
	for i := 0; i < len(path)-1; i++ {
		w, ok := cg.factors[edgeKey{path[i], path[i+1]}]
		if !ok {
			return Measure{}, false
		}
		factor *= w
	}

	val, upper, hasUpper := input.Values()
	var newUpper *float64
	if hasUpper {
		u := roundToInt(*upper * factor)
		newUpper = &u
	}
	result := NewWithUpper(uTo, roundToInt(val*factor), newUpper)
	converted := result.Denormalize()
	return converted, true
}
