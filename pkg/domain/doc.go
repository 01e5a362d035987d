/*
Package domain contains the core models of the proof-state viewer.

It defines the state-invariant graph of a coloring game, the immutable proof-state
snapshots recorded by the model finder, and the error kinds raised when a snapshot
breaks its data contract. This package is kept pure and free of external dependencies
like I/O or rendering, following Hexagonal Architecture principles.

# Key Entities

  - Graph: The fixed node identities and symmetric adjacency shared by every snapshot.
  - ProofState: One immutable snapshot (per-node color and covered flag, plus the turn owner).
  - Trace: The ordered, non-empty sequence of snapshots over one graph.
  - Turn: The closed set of participants whose move a snapshot records.
*/
package domain
