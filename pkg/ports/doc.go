/*
Package ports defines the driven ports (interfaces) of the proof-state viewer.

These interfaces decouple the render pass from where traces come from and where
scenes go, so the same core can drive SVG, PNG, Mermaid, terminal, HTTP and MCP hosts.

# Key Interfaces

  - TraceLoader: Produces the graph and the ordered snapshot sequence (instance file, memory).
  - SceneRenderer: Draws a complete scene; the external drawing toolkit sits behind it.
  - Viewer: The navigation and render surface consumed by host adapters.
*/
package ports
