package cli

import (
	"context"
	"fmt"
	"io"

	"godag/internal/export"
	"godag/internal/ontology"
	"godag/internal/relation"
)

// Result summarizes a completed (or failed) run.
type Result struct {
	ExitCode int
	Terms    int
	Edges    int
}

// Execute maps a canonical Invocation to one pipeline run:
// load the ontology, flatten it, write the requested outputs.
//
// Confirmation lines for each written file go to out. There is no
// partial-output recovery: a write failure may leave a truncated file
// behind, and the error reports the path and cause instead.
func Execute(ctx context.Context, inv Invocation, out io.Writer) (Result, error) {
	res := Result{ExitCode: ExitInternalError}

	g, err := ontology.Load(inv.OntologyPath)
	if err != nil {
		res.ExitCode = ExitLoadFailure
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	edges := relation.Edges(g, inv.LabelMode)
	if err := export.EdgeList(inv.OutputPath, edges, inv.Format, inv.Delimiter); err != nil {
		res.ExitCode = ExitWriteFailure
		return res, err
	}
	fmt.Fprintf(out, "graph saved in %s using %s\n", inv.OutputPath, labelNoun(inv.LabelMode))

	if inv.MappingPath != "" {
		if err := export.Mapping(inv.MappingPath, relation.Mapping(g), inv.Format, inv.Delimiter); err != nil {
			res.ExitCode = ExitWriteFailure
			return res, err
		}
		fmt.Fprintf(out, "mapping id:name saved in %s\n", inv.MappingPath)
	}

	res.ExitCode = ExitSuccess
	res.Terms = g.Len()
	res.Edges = len(edges)
	return res, nil
}

func labelNoun(mode relation.LabelMode) string {
	if mode == relation.LabelID {
		return "ids"
	}
	return "names"
}
