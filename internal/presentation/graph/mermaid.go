package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/transaction"
)

// GraphOverlay contains run state to visualize on the graph.
type GraphOverlay struct {
	Fulfilled []string
	Failed    string
}

// GenerateMermaid produces a Mermaid flowchart from a compiled transaction list.
// Edges point from a dependency to its dependent. Shapes:
// - Root (no dependencies): ((Circle))
// - Join (two or more dependencies): {{Hexagon}}
// - Default: [Rectangle]
func GenerateMermaid(txs []*transaction.Transaction, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, tx := range txs {
		safeID := sanitizeMermaidID(tx.ID())
		deps := tx.Dependencies()

		opener, closer := "[", "]"
		switch {
		case len(deps) == 0:
			opener, closer = "((", "))"
		case len(deps) > 1:
			opener, closer = "{{", "}}"
		}

		label := strings.ReplaceAll(tx.Label(), "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, dep := range deps {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(dep.ID()), safeID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef fulfilled fill:#e8f5e9,stroke:#1b5e20,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Fulfilled {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s fulfilled;\n", safeID))
			}
		}

		if overlay.Failed != "" {
			sb.WriteString(fmt.Sprintf("    class %s failed;\n", sanitizeMermaidID(overlay.Failed)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID replaces every rune outside [A-Za-z0-9_] with an underscore.
func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}
