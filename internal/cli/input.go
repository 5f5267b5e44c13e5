package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"godag/internal/export"
	"godag/internal/relation"
)

const (
	ExitSuccess           = 0
	ExitLoadFailure       = 1
	ExitInvalidInvocation = 2
	ExitWriteFailure      = 3
	ExitInternalError     = 4
)

const usageText = `usage: godag -ontology <file> [-json] [-use_id] [-delim <sep>] <output> [idtoname]

Flatten a Gene Ontology release into a parent>child edge relation and,
optionally, an id>name mapping.

  <output>    destination of the edge relation (required)
  [idtoname]  additionally write the id>name mapping there

  -ontology   ontology source: RDF N-Triples/N-Quads, optionally .gz (required)
  -json       write JSON instead of delimiter-separated lines
  -use_id     label edge endpoints with raw GO identifiers instead of names
  -delim      DSV field delimiter (default tab; ignored with -json)`

// Invocation is the fully canonicalized description of a run.
//
// All behavior-selecting options live here so the load/transform/write
// stages stay testable in isolation; nothing downstream re-reads flags
// or the environment.
type Invocation struct {
	OntologyPath string
	OutputPath   string
	MappingPath  string // empty when no idtoname output was requested
	Format       export.Format
	LabelMode    relation.LabelMode
	Delimiter    string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI arguments into a canonical Invocation.
//
// It does not read env vars or the process CWD; paths are cleaned but
// otherwise taken as given.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("godag", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var (
		ontologyPath string
		asJSON       bool
		useID        bool
		delim        string
	)

	fs.StringVar(&ontologyPath, "ontology", "", "Ontology source path. Required.")
	fs.BoolVar(&asJSON, "json", false, "Write JSON instead of DSV.")
	fs.BoolVar(&useID, "use_id", false, "Label edge endpoints with raw identifiers.")
	fs.StringVar(&delim, "delim", export.DefaultDelimiter, "DSV field delimiter.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Invocation{}, &InvocationError{ExitCode: ExitSuccess, Message: usageText}
		}
		return Invocation{}, invalidInvocationf("%v", err)
	}

	if strings.TrimSpace(ontologyPath) == "" {
		return Invocation{}, invalidInvocationf("-ontology is required")
	}
	if delim == "" {
		return Invocation{}, invalidInvocationf("-delim must not be empty")
	}

	var outputPath, mappingPath string
	switch fs.NArg() {
	case 1:
		outputPath = fs.Arg(0)
	case 2:
		outputPath = fs.Arg(0)
		mappingPath = fs.Arg(1)
	case 0:
		return Invocation{}, invalidInvocationf("missing output path argument")
	default:
		return Invocation{}, invalidInvocationf("unexpected extra arguments: %q", strings.Join(fs.Args()[2:], " "))
	}
	if strings.TrimSpace(outputPath) == "" {
		return Invocation{}, invalidInvocationf("output path must not be empty")
	}

	inv := Invocation{
		OntologyPath: filepath.Clean(ontologyPath),
		OutputPath:   filepath.Clean(outputPath),
		Format:       export.FormatDSV,
		LabelMode:    relation.LabelName,
		Delimiter:    delim,
	}
	if mappingPath != "" {
		inv.MappingPath = filepath.Clean(mappingPath)
	}
	if asJSON {
		inv.Format = export.FormatJSON
	}
	if useID {
		inv.LabelMode = relation.LabelID
	}
	return inv, nil
}

// ExitCodeFor extracts a semantic exit code from a ParseInvocation error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCodeFor(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		return invErr.ExitCode
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
