/*
Package proofview renders the proof states produced by a relational model finder for a
graph-coloring game, and lets a person step through them.

It separates the fixed game graph (node identities and adjacency) from the per-state facts
(node colors, covered flags, turn owner), derives display styles from those facts with pure
rules, and hands a complete scene to a pluggable renderer on every navigation.

# Concept

A trace is an ordered, non-empty sequence of immutable snapshots over one graph. The viewer
holds a cursor into that sequence. "next" and "previous" clamp at the ends instead of failing,
and each call redraws the whole scene from scratch at the resulting cursor.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/proofview"
	)

	func main() {
		// Load an instance file exported by the model finder.
		v, err := proofview.New("./four_cycle.yaml")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		sc, err := v.Render(ctx)
		if err != nil {
			log.Fatal(err)
		}
		log.Println(sc.Texts)

		// Step forward; at the last state this is a no-op that still redraws.
		if _, err := v.Next(ctx); err != nil {
			log.Fatal(err)
		}
	}
*/
package proofview
