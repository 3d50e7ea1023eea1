package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/transaction"
)

func tx(id string) *transaction.Transaction {
	return transaction.New(nil, transaction.WithID(id))
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		txs      func() []*transaction.Transaction
		contains []string
	}{
		{
			name: "Root Shape",
			txs: func() []*transaction.Transaction {
				return transaction.Sequence(tx("load"))
			},
			contains: []string{
				"load((\"load\"))",
			},
		},
		{
			name: "Edges And Join Shape",
			txs: func() []*transaction.Transaction {
				return transaction.Sequence(
					transaction.Concurrent(tx("a"), tx("b")),
					tx("join"),
				)
			},
			contains: []string{
				"a --> join",
				"b --> join",
				"join{{\"join\"}}",
			},
		},
		{
			name: "Single Dependency Shape",
			txs: func() []*transaction.Transaction {
				return transaction.Sequence(tx("first"), tx("second"))
			},
			contains: []string{
				"second[\"second\"]",
				"first --> second",
			},
		},
		{
			name: "ID Sanitization",
			txs: func() []*transaction.Transaction {
				return []*transaction.Transaction{tx("s0.1"), tx("hyphen-ated")}
			},
			contains: []string{
				"s0_1((\"s0.1\"))",
				"hyphen_ated((\"hyphen-ated\"))",
			},
		},
		{
			name: "Label Escaping",
			txs: func() []*transaction.Transaction {
				return []*transaction.Transaction{
					transaction.New(nil, transaction.WithID("q"), transaction.WithLabel(`say "hi"`)),
				}
			},
			contains: []string{
				`q(("say 'hi'"))`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.txs(), nil)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			if strings.Contains(got, "classDef") {
				t.Errorf("expected no overlay styles without overlay, got:\n%v", got)
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	txs := transaction.Sequence(tx("a"), tx("b"), tx("c"))
	got := graph.GenerateMermaid(txs, &graph.GraphOverlay{
		Fulfilled: []string{"a", "a", "b"},
		Failed:    "c",
	})

	for _, want := range []string{
		"classDef fulfilled",
		"class a fulfilled;",
		"class b fulfilled;",
		"class c failed;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "class a fulfilled;"); n != 1 {
		t.Errorf("expected fulfilled class once for a, got %d", n)
	}
}
