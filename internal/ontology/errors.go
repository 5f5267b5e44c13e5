package ontology

import "fmt"

// LoadError reports a failure to read or parse an ontology source.
// It always carries the offending path and the underlying cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load ontology %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
