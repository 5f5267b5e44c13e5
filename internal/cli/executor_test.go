package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"godag/internal/export"
	"godag/internal/ontology"
	"godag/internal/relation"
)

const toyOntology = `<http://purl.obolibrary.org/obo/GO_0000001> <http://www.w3.org/2000/01/rdf-schema#label> "root" .
<http://purl.obolibrary.org/obo/GO_0000001> <http://www.geneontology.org/formats/oboInOwl#hasOBONamespace> "biological_process" .
<http://purl.obolibrary.org/obo/GO_0000002> <http://www.w3.org/2000/01/rdf-schema#label> "child1" .
<http://purl.obolibrary.org/obo/GO_0000002> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://purl.obolibrary.org/obo/GO_0000001> .
<http://purl.obolibrary.org/obo/GO_0000003> <http://www.w3.org/2000/01/rdf-schema#label> "child2" .
<http://purl.obolibrary.org/obo/GO_0000003> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://purl.obolibrary.org/obo/GO_0000001> .
`

func writeToyOntology(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go.nt")
	if err := os.WriteFile(path, []byte(toyOntology), 0o644); err != nil {
		t.Fatalf("write ontology fixture: %v", err)
	}
	return path
}

func TestExecute_WritesEdgesAndMapping(t *testing.T) {
	dir := t.TempDir()
	inv := Invocation{
		OntologyPath: writeToyOntology(t),
		OutputPath:   filepath.Join(dir, "edges.tsv"),
		MappingPath:  filepath.Join(dir, "idtoname.tsv"),
		Format:       export.FormatDSV,
		LabelMode:    relation.LabelID,
		Delimiter:    "\t",
	}

	var out bytes.Buffer
	res, err := Execute(context.Background(), inv, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != ExitSuccess {
		t.Fatalf("exit code: got %d, want %d", res.ExitCode, ExitSuccess)
	}
	if res.Terms != 3 || res.Edges != 2 {
		t.Fatalf("unexpected result counts: %#v", res)
	}

	edges, err := os.ReadFile(inv.OutputPath)
	if err != nil {
		t.Fatalf("read edges: %v", err)
	}
	want := "GO:0000001\tGO:0000002\nGO:0000001\tGO:0000003\n"
	if string(edges) != want {
		t.Fatalf("edge relation:\ngot  %q\nwant %q", edges, want)
	}

	mapping, err := os.ReadFile(inv.MappingPath)
	if err != nil {
		t.Fatalf("read mapping: %v", err)
	}
	wantMapping := "GO:0000001\troot\nGO:0000002\tchild1\nGO:0000003\tchild2\n"
	if string(mapping) != wantMapping {
		t.Fatalf("mapping:\ngot  %q\nwant %q", mapping, wantMapping)
	}

	if !strings.Contains(out.String(), "graph saved in") || !strings.Contains(out.String(), "using ids") {
		t.Fatalf("missing confirmation output: %q", out.String())
	}
	if !strings.Contains(out.String(), "mapping id:name saved in") {
		t.Fatalf("missing mapping confirmation: %q", out.String())
	}
}

func TestExecute_LoadFailureExitCode(t *testing.T) {
	inv := Invocation{
		OntologyPath: filepath.Join(t.TempDir(), "absent.nt"),
		OutputPath:   filepath.Join(t.TempDir(), "edges.tsv"),
		Format:       export.FormatDSV,
		Delimiter:    "\t",
	}

	res, err := Execute(context.Background(), inv, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected load error")
	}
	var loadErr *ontology.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %T: %v", err, err)
	}
	if loadErr.Path != inv.OntologyPath {
		t.Fatalf("LoadError path: got %q, want %q", loadErr.Path, inv.OntologyPath)
	}
	if res.ExitCode != ExitLoadFailure {
		t.Fatalf("exit code: got %d, want %d", res.ExitCode, ExitLoadFailure)
	}
}

func TestExecute_WriteFailureExitCode(t *testing.T) {
	inv := Invocation{
		OntologyPath: writeToyOntology(t),
		OutputPath:   filepath.Join(t.TempDir(), "missing-dir", "edges.tsv"),
		Format:       export.FormatDSV,
		Delimiter:    "\t",
	}

	res, err := Execute(context.Background(), inv, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected write error")
	}
	var writeErr *export.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteError, got %T: %v", err, err)
	}
	if writeErr.Path != inv.OutputPath {
		t.Fatalf("WriteError path: got %q, want %q", writeErr.Path, inv.OutputPath)
	}
	if res.ExitCode != ExitWriteFailure {
		t.Fatalf("exit code: got %d, want %d", res.ExitCode, ExitWriteFailure)
	}
}
