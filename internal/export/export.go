package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"godag/internal/relation"
)

// Format selects the serialization of an output file.
type Format int

const (
	// FormatDSV writes delimiter-separated lines.
	FormatDSV Format = iota
	// FormatJSON writes a single JSON document.
	FormatJSON
)

// DefaultDelimiter separates DSV fields unless the invocation overrides it.
const DefaultDelimiter = "\t"

// WriteError reports a failure to create or write an output file.
// Output already flushed before the failure is left in place; the tool
// does not clean up partial files.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// EdgeList serializes edges to path, truncating any existing file.
func EdgeList(path string, edges []relation.Edge, format Format, delim string) error {
	if format == FormatJSON {
		if edges == nil {
			edges = []relation.Edge{}
		}
		return writeJSON(path, edges)
	}
	rows := make([][2]string, len(edges))
	for i, e := range edges {
		rows[i] = [2]string{e.Source, e.Target}
	}
	return writeDSV(path, rows, delim)
}

// Mapping serializes the id -> name relation to path, truncating any
// existing file. DSV rows are ordered by identifier; JSON objects are
// key-sorted by the encoder, so both formats are reproducible.
func Mapping(path string, m map[string]string, format Format, delim string) error {
	if format == FormatJSON {
		if m == nil {
			m = map[string]string{}
		}
		return writeJSON(path, m)
	}
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	rows := make([][2]string, len(ids))
	for i, id := range ids {
		rows[i] = [2]string{id, m[id]}
	}
	return writeDSV(path, rows, delim)
}

// writeJSON materializes v and writes it in a single call.
func writeJSON(path string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func writeDSV(path string, rows [][2]string, delim string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(row[0] + delim + row[1] + "\n"); err != nil {
			f.Close()
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
