// diag.go - optional Graphviz rendering of a diagnostic *core.Graph,
// written only under -verbose, following the teacher's own
// graph-to-DOT-to-SVG pipeline (pkg/render/nodelink/dot.go), generalised
// from dag.DAG to core.Graph.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/dgprune/core"
)

// graphToDOT renders g as an undirected Graphviz DOT document.
func graphToDOT(g *core.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white];\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")

	return buf.String()
}

// renderDiagnosticSVG renders g to an SVG file at path, overwriting any
// existing content.
func renderDiagnosticSVG(g *core.Graph, path string) error {
	dot := graphToDOT(g)

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("cli: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("cli: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return fmt.Errorf("cli: render svg: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// diagnosticPath derives the sibling SVG path for a given .nmr input, e.g.
// "foo.nmr" -> "foo.diag.svg".
func diagnosticPath(fnmr string) string {
	trimmed := strings.TrimSuffix(fnmr, ".nmr")

	return trimmed + ".diag.svg"
}
