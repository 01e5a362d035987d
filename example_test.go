package proofview_test

import (
	"context"
	"fmt"

	"github.com/aretw0/proofview"
	"github.com/aretw0/proofview/pkg/adapters/instance"
	"github.com/aretw0/proofview/pkg/adapters/memory"
)

func ExampleNew_memory() {
	// 1. Describe a trace the way the model finder exports it
	doc := &instance.Document{
		Name:      "triangle",
		Nodes:     []string{"Node0", "Node1", "Node2"},
		Neighbors: [][2]string{{"Node0", "Node1"}, {"Node1", "Node2"}, {"Node2", "Node0"}},
		States: []instance.StateDocument{
			{
				Turn:    "Other0",
				Color:   map[string]string{"Node0": "Red0", "Node1": "Green0", "Node2": "Blue0"},
				Covered: map[string]any{"Node0": false, "Node1": false, "Node2": false},
			},
			{
				Turn:    "Prover0",
				Color:   map[string]string{"Node0": "Red0", "Node1": "Green0", "Node2": "Blue0"},
				Covered: []any{"Node2"},
			},
		},
	}

	loader, err := memory.NewFromDocument(doc)
	if err != nil {
		panic(err)
	}

	// 2. Initialize the viewer with the in-memory loader
	v, err := proofview.New("", proofview.WithLoader(loader))
	if err != nil {
		panic(err)
	}

	// 3. Render, then step past the end
	ctx := context.Background()
	sc, err := v.Render(ctx)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 3; i++ {
		fmt.Printf("%s | %s | node 2: %s | edge %s: %s\n",
			sc.Texts[len(sc.Texts)-1].Content,
			sc.Texts[len(sc.Texts)-2].Content,
			sc.Nodes[2].Fill,
			sc.Edges[0].Edge, sc.Edges[0].Stroke)
		if sc, err = v.Next(ctx); err != nil {
			panic(err)
		}
	}

	// Output:
	// State 1 / 2 | Turn: Other | node 2: blue | edge (0,1): gray
	// State 2 / 2 | Turn: Prover | node 2: black | edge (0,1): black
	// State 2 / 2 | Turn: Prover | node 2: black | edge (0,1): black
}
