package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/tidwall/gjson"
)

// GraphLoadError reports a missing or malformed graph file. It is fatal for a
// run: no strategy executes without a graph.
type GraphLoadError struct {
	Name string
	Path string
	Err  error
}

func (e *GraphLoadError) Error() string {
	return fmt.Sprintf("load graph %q from %s: %v", e.Name, e.Path, e.Err)
}

func (e *GraphLoadError) Unwrap() error {
	return e.Err
}

// Path returns the location of the graph file for name under dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// Load reads <dir>/<name>.json and returns the canonical graph.
func Load(ctx context.Context, dir, name string) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	path := Path(dir, name)
	logger.Debug("Loading graph.", "graph", name, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &GraphLoadError{Name: name, Path: path, Err: err}
	}

	g, err := Parse(name, data)
	if err != nil {
		return nil, &GraphLoadError{Name: name, Path: path, Err: err}
	}

	logger.Info("Graph loaded.", "graph", name, "nodes", g.Len(), "edges", g.EdgeCount())
	return g, nil
}

// Parse decodes an adjacency object ({"id": [neighbour ids]}) into a Graph.
// Neighbour ids may be JSON strings or numbers.
func Parse(name string, data []byte) (*Graph, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("expected an object of adjacency lists, got %s", root.Type)
	}

	b := NewBuilder(name)
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		id := NodeID(key.String())
		if id == "" {
			parseErr = fmt.Errorf("empty node id")
			return false
		}
		b.AddNode(id)

		if value.Type == gjson.Null {
			return true
		}
		if !value.IsArray() {
			parseErr = fmt.Errorf("node %q: adjacency must be an array, got %s", id, value.Type)
			return false
		}
		value.ForEach(func(_, nbr gjson.Result) bool {
			nid, err := ParseID(nbr)
			if err != nil {
				parseErr = fmt.Errorf("node %q: %w", id, err)
				return false
			}
			b.AddEdge(id, nid)
			return true
		})
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return b.Build(), nil
}

// ParseID normalises a JSON string or number into a NodeID.
func ParseID(r gjson.Result) (NodeID, error) {
	switch r.Type {
	case gjson.String, gjson.Number:
		if s := r.String(); s != "" {
			return NodeID(s), nil
		}
		return "", fmt.Errorf("empty node id")
	default:
		return "", fmt.Errorf("node id must be a string or number, got %s", r.Type)
	}
}
