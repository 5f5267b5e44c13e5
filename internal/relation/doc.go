// Package relation flattens a loaded ontology graph into the two output
// relations the tool can emit: the parent -> child edge list and the
// id -> name mapping.
package relation
