package relation

import "godag/internal/ontology"

// LabelMode selects how edge endpoints are rendered.
type LabelMode int

const (
	// LabelName renders endpoints with their display names.
	LabelName LabelMode = iota
	// LabelID renders endpoints with their raw GO identifiers.
	LabelID
)

// Edge is one parent -> child relationship of the DAG, rendered with the
// labels selected at transform time.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Edges flattens g into its edge relation: one Edge per parent -> child
// relationship, source first. A term without children contributes no
// edges. Relationships are emitted as the graph records them, without
// deduplication.
//
// The result is ordered by the identifiers of both endpoints, so the
// same graph always flattens to the same sequence regardless of label
// mode.
func Edges(g *ontology.Graph, mode LabelMode) []Edge {
	edges := make([]Edge, 0)
	for _, id := range g.IDs() {
		t, _ := g.Term(id)
		for _, childID := range t.ChildIDs() {
			child, ok := g.Term(childID)
			if !ok {
				continue
			}
			edges = append(edges, Edge{
				Source: label(t, mode),
				Target: label(child, mode),
			})
		}
	}
	return edges
}

// Mapping returns the id -> name relation: exactly one entry per term
// in g. Names are not guaranteed unique; identifiers are.
func Mapping(g *ontology.Graph) map[string]string {
	m := make(map[string]string, g.Len())
	for _, id := range g.IDs() {
		t, _ := g.Term(id)
		m[t.ID] = t.Name
	}
	return m
}

func label(t *ontology.Term, mode LabelMode) string {
	if mode == LabelID {
		return t.ID
	}
	return t.Name
}
