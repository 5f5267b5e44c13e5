// Package ontology loads a Gene Ontology term graph and exposes it as an
// explicit, library-independent model.
//
// It is intentionally split into:
//   - Term/Graph: the flat record model consumed by the rest of the tool
//     (stable GO identifiers, display names, namespace, parent/child sets)
//   - Load: the adapter over the external ontology library that parses the
//     RDF source and resolves term relationships
//
// The ontology library owns all parsing and DAG construction. This package
// only reads the resulting statement graph and copies the term records out,
// so nothing downstream depends on how the library represents terms
// internally.
package ontology
