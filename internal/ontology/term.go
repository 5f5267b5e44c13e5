package ontology

import "sort"

// Term is one GO concept node. ID is the stable GO identifier
// (e.g. "GO:0008150"); Name is the human-readable label and is not
// guaranteed unique across terms.
//
// Parents and Children hold the identifiers of directly related terms.
// Every identifier they contain is resolvable through the owning Graph;
// links to terms that were not retained (non-GO nodes, obsolete terms)
// are never recorded.
type Term struct {
	ID        string
	Name      string
	Namespace string
	Parents   map[string]bool
	Children  map[string]bool
}

// NewTerm returns a Term with empty relationship sets.
func NewTerm(id, name, namespace string) *Term {
	return &Term{
		ID:        id,
		Name:      name,
		Namespace: namespace,
		Parents:   make(map[string]bool),
		Children:  make(map[string]bool),
	}
}

// ParentIDs returns the direct parent identifiers in sorted order.
func (t *Term) ParentIDs() []string { return sortedKeys(t.Parents) }

// ChildIDs returns the direct child identifiers in sorted order.
func (t *Term) ChildIDs() []string { return sortedKeys(t.Children) }

// Graph is the full loaded ontology: a mapping from term identifier to
// its record. It is read-only after Load returns.
type Graph struct {
	terms map[string]*Term
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{terms: make(map[string]*Term)}
}

// Insert adds t to the graph, replacing any existing record with the
// same identifier.
func (g *Graph) Insert(t *Term) {
	g.terms[t.ID] = t
}

// Term returns the record for id, if present.
func (g *Graph) Term(id string) (*Term, bool) {
	t, ok := g.terms[id]
	return t, ok
}

// Len returns the number of terms in the graph.
func (g *Graph) Len() int { return len(g.terms) }

// IDs returns every term identifier in sorted order.
//
// Map iteration order is not stable across runs, so all downstream
// traversal goes through this ordering to keep outputs reproducible.
func (g *Graph) IDs() []string { return sortedKeys(g.terms) }

// Link records a parent -> child relationship on both endpoints.
// It reports false, recording nothing, when either endpoint is not a
// retained term.
func (g *Graph) Link(parentID, childID string) bool {
	parent, ok := g.terms[parentID]
	if !ok {
		return false
	}
	child, ok := g.terms[childID]
	if !ok {
		return false
	}
	parent.Children[childID] = true
	child.Parents[parentID] = true
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
