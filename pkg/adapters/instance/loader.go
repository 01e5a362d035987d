// Package instance loads proof traces exported by the relational model finder.
package instance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/proofview/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FileLoader implements ports.TraceLoader over a YAML or JSON instance file.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for path. The format is chosen by extension (.json or YAML).
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and decodes the file.
func (l *FileLoader) Load(ctx context.Context) (*domain.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(l.path)) == ".json" {
		format = "json"
	}

	trace, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	if trace.Name == "" {
		trace.Name = strings.TrimSuffix(filepath.Base(l.path), filepath.Ext(l.path))
	}
	return trace, nil
}

// Parse decodes raw instance bytes in the given format ("json" or "yaml").
func Parse(data []byte, format string) (*domain.Trace, error) {
	var raw map[string]any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse instance json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse instance yaml: %w", err)
		}
	}
	if raw == nil {
		return nil, domain.ErrEmptyGraph
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Decode maps a loosely typed document onto Document.
func Decode(raw map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode instance: %w", err)
	}
	return &doc, nil
}

// Build validates a document and converts it into a trace.
func Build(doc *Document) (*domain.Trace, error) {
	if len(doc.Nodes) == 0 {
		return nil, domain.ErrEmptyGraph
	}

	index := make(map[string]domain.NodeID, len(doc.Nodes))
	for i, atom := range doc.Nodes {
		if _, dup := index[atom]; dup {
			return nil, fmt.Errorf("duplicate node atom %q", atom)
		}
		index[atom] = domain.NodeID(i)
	}
	lookup := func(atom string) (domain.NodeID, error) {
		id, ok := index[atom]
		if !ok {
			return 0, fmt.Errorf("unknown node atom %q", atom)
		}
		return id, nil
	}

	pairs, err := neighborPairs(doc.Neighbors)
	if err != nil {
		return nil, err
	}
	edges := make([]domain.Edge, 0, len(pairs))
	for _, p := range pairs {
		a, err := lookup(p[0])
		if err != nil {
			return nil, fmt.Errorf("neighbors: %w", err)
		}
		b, err := lookup(p[1])
		if err != nil {
			return nil, fmt.Errorf("neighbors: %w", err)
		}
		edges = append(edges, domain.NewEdge(a, b))
	}

	graph, err := domain.NewGraph(len(doc.Nodes), edges...)
	if err != nil {
		return nil, err
	}

	states := make([]*domain.ProofState, 0, len(doc.States))
	for i, sd := range doc.States {
		s, err := buildState(sd, lookup, doc.Nodes)
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		states = append(states, s)
	}

	return domain.NewTrace(doc.Name, graph, states)
}

func buildState(sd StateDocument, lookup func(string) (domain.NodeID, error), nodes []string) (*domain.ProofState, error) {
	turn, err := TurnOf(sd.Turn)
	if err != nil {
		return nil, err
	}

	colors := make(map[domain.NodeID]domain.Color, len(sd.Color))
	for atom, label := range sd.Color {
		id, err := lookup(atom)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		if c := ColorOf(label); c != "" {
			colors[id] = c
		}
	}

	covered := make(map[domain.NodeID]bool, len(nodes))
	raw := sd.Covered
	if atoms, ok := raw.([]string); ok {
		items := make([]any, len(atoms))
		for i, a := range atoms {
			items[i] = a
		}
		raw = items
	}
	switch v := raw.(type) {
	case nil:
	case []any:
		for i := range nodes {
			covered[domain.NodeID(i)] = false
		}
		for _, item := range v {
			atom, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("covered: expected node atom, got %T", item)
			}
			id, err := lookup(atom)
			if err != nil {
				return nil, fmt.Errorf("covered: %w", err)
			}
			covered[id] = true
		}
	case map[string]any:
		for atom, flag := range v {
			id, err := lookup(atom)
			if err != nil {
				return nil, fmt.Errorf("covered: %w", err)
			}
			b, err := FlagOf(flag)
			if err != nil {
				return nil, fmt.Errorf("covered %s: %w", atom, err)
			}
			covered[id] = b
		}
	default:
		return nil, fmt.Errorf("covered: unsupported shape %T", v)
	}

	return domain.NewProofState(turn, colors, covered), nil
}

func neighborPairs(v any) ([][2]string, error) {
	var out [][2]string
	switch t := v.(type) {
	case nil:
	case [][2]string:
		out = append(out, t...)
	case map[string][]string:
		for from, list := range t {
			for _, to := range list {
				out = append(out, [2]string{from, to})
			}
		}
	case []any:
		for _, item := range t {
			pair, ok := item.([]any)
			if !ok || len(pair) != 2 {
				return nil, fmt.Errorf("neighbors: expected [a, b] pair, got %v", item)
			}
			a, okA := pair[0].(string)
			b, okB := pair[1].(string)
			if !okA || !okB {
				return nil, fmt.Errorf("neighbors: expected atom names, got %v", item)
			}
			out = append(out, [2]string{a, b})
		}
	case map[string]any:
		for from, list := range t {
			items, ok := list.([]any)
			if !ok {
				return nil, fmt.Errorf("neighbors of %s: expected list, got %T", from, list)
			}
			for _, item := range items {
				to, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("neighbors of %s: expected atom, got %T", from, item)
				}
				out = append(out, [2]string{from, to})
			}
		}
	default:
		return nil, fmt.Errorf("neighbors: unsupported shape %T", v)
	}
	return out, nil
}
