package ontology

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/formats/rdf"

	"github.com/kortschak/gogo"
)

// Predicate IRIs recognized in the ontology source. Both the full forms
// and the local shorthand forms are accepted, since both appear in the
// usual OWL to N-Triples conversions of the GO release files.
const (
	predSubClassOf      = "<http://www.w3.org/2000/01/rdf-schema#subClassOf>"
	predSubClassOfLocal = "<rdfs:subClassOf>"

	predLabel      = "<http://www.w3.org/2000/01/rdf-schema#label>"
	predLabelLocal = "<rdfs:label>"

	predNamespace      = "<http://www.geneontology.org/formats/oboInOwl#hasOBONamespace>"
	predNamespaceLocal = "<oboInOwl:hasOBONamespace>"

	predDeprecated      = "<http://www.w3.org/2002/07/owl#deprecated>"
	predDeprecatedLocal = "<owl:deprecated>"
)

// GO term subject IRI prefixes, full and local form.
var termPrefixes = []string{
	"<http://purl.obolibrary.org/obo/GO_",
	"<obo:GO_",
}

// Load reads the ontology at path and returns the term graph.
//
// The source must be RDF N-Triples or N-Quads, optionally gzip
// compressed (a .gz suffix selects decompression). Parsing and DAG
// resolution are performed by the ontology library; Load only filters
// the statements it needs and copies the resulting term records into a
// Graph. Obsolete terms (owl:deprecated) are dropped, as are any
// relationships touching them.
//
// All failures are reported as a *LoadError carrying path and cause.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		defer zr.Close()
		r = zr
	}

	og, err := decode(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return extract(og), nil
}

// decode feeds the relevant statements of the source into a fresh
// ontology graph. Statements with unrelated predicates are filtered out
// before insertion to keep the statement graph lean; the filter must
// cover every predicate used by extract.
func decode(r io.Reader) (*gogo.Graph, error) {
	og := gogo.NewGraph()
	dec := rdf.NewDecoder(r)
	for {
		s, err := dec.Unmarshal()
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("decode statement: %w", err)
			}
			break
		}

		switch s.Predicate.Value {
		case predSubClassOf, predSubClassOfLocal,
			predLabel, predLabelLocal,
			predNamespace, predNamespaceLocal,
			predDeprecated, predDeprecatedLocal:
		default:
			continue
		}

		og.AddStatement(s)
	}
	return og, nil
}

// extract copies the GO term records out of the statement graph.
//
// The first pass retains every non-obsolete GO term node; the second
// pass records subclass relationships whose endpoints were both
// retained, so the returned graph never holds a dangling reference.
func extract(og *gogo.Graph) *Graph {
	g := NewGraph()

	type node struct {
		term rdf.Term
		id   string
	}
	var retained []node

	it := og.Nodes()
	for it.Next() {
		term, ok := it.Node().(rdf.Term)
		if !ok {
			continue
		}
		id, ok := termID(term.Value)
		if !ok || isDeprecated(og, term) {
			continue
		}

		name := labelOf(og, term)
		if name == "" {
			// Terms without an rdfs:label keep their identifier as
			// the display name.
			name = id
		}
		g.Insert(NewTerm(id, name, namespaceOf(og, term)))
		retained = append(retained, node{term: term, id: id})
	}

	for _, n := range retained {
		parents := og.Query(n.term).Out(func(s *rdf.Statement) bool {
			return isSubClassOf(s.Predicate.Value)
		}).Result()
		for _, p := range parents {
			pid, ok := termID(p.Value)
			if !ok {
				continue
			}
			g.Link(pid, n.id)
		}
	}

	return g
}

func isSubClassOf(pred string) bool {
	return pred == predSubClassOf || pred == predSubClassOfLocal
}

// termID maps a GO term IRI to its stable identifier, e.g.
// <http://purl.obolibrary.org/obo/GO_0008150> -> GO:0008150.
func termID(iri string) (string, bool) {
	for _, prefix := range termPrefixes {
		if rest, ok := strings.CutPrefix(iri, prefix); ok {
			return "GO:" + strings.TrimSuffix(rest, ">"), true
		}
	}
	return "", false
}

// labelOf returns the rdfs:label literal for term. Should the source
// carry several labels, the lexically smallest wins so repeated loads
// agree.
func labelOf(og *gogo.Graph, term rdf.Term) string {
	results := og.Query(term).Out(func(s *rdf.Statement) bool {
		return s.Predicate.Value == predLabel || s.Predicate.Value == predLabelLocal
	}).Result()

	var labels []string
	for _, r := range results {
		if text, ok := literalText(r); ok {
			labels = append(labels, text)
		}
	}
	if len(labels) == 0 {
		return ""
	}
	sort.Strings(labels)
	return labels[0]
}

// namespaceOf returns the oboInOwl:hasOBONamespace literal for term, or
// "" when the source does not record one.
func namespaceOf(og *gogo.Graph, term rdf.Term) string {
	results := og.Query(term).Out(func(s *rdf.Statement) bool {
		return s.Predicate.Value == predNamespace || s.Predicate.Value == predNamespaceLocal
	}).Result()
	for _, r := range results {
		if text, ok := literalText(r); ok {
			return text
		}
	}
	return ""
}

// isDeprecated reports whether term carries an owl:deprecated "true"
// annotation, marking an obsolete GO term.
func isDeprecated(og *gogo.Graph, term rdf.Term) bool {
	results := og.Query(term).Out(func(s *rdf.Statement) bool {
		return s.Predicate.Value == predDeprecated || s.Predicate.Value == predDeprecatedLocal
	}).Result()
	for _, r := range results {
		if text, ok := literalText(r); ok && text == "true" {
			return true
		}
	}
	return false
}

func literalText(term rdf.Term) (string, bool) {
	text, _, kind, err := term.Parts()
	if err != nil || kind != rdf.Literal {
		return "", false
	}
	return text, true
}
