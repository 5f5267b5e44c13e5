// Package export serializes the flattened ontology relations to disk as
// JSON or delimiter-separated text.
//
// JSON edge lists are arrays of {"source","target"} objects; JSON
// mappings are a single object literal keyed by term identifier. DSV
// output is one record per line, fields joined by the configured
// delimiter, no header, trailing newline. Fields are not quoted, so a
// display name containing the delimiter produces an ambiguous line;
// this is a known limitation of the format.
package export
