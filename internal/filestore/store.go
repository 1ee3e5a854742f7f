// Package filestore persists seed plans as plain text files.
//
// A plan for strategy label on graph name lives at
//
//	<root>/<label>/<name>.txt
//
// with one node id per line, round after round. This is the layout the
// competition accepts for submission, so a cached file can be handed in
// unchanged.
package filestore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/seedstore"
)

// Store is a directory-backed seedstore.Store.
type Store struct {
	root string
}

var _ seedstore.Store = (*Store)(nil)

// New returns a store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Path returns the file that holds the plan for (label, graphName).
func (s *Store) Path(label, graphName string) string {
	return filepath.Join(s.root, label, graphName+".txt")
}

// Exists reports whether the plan file is present.
func (s *Store) Exists(ctx context.Context, label, graphName string) (bool, error) {
	_, err := os.Stat(s.Path(label, graphName))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Load reads one id per line. Blank lines and surrounding whitespace are
// ignored.
func (s *Store) Load(ctx context.Context, label, graphName string) ([]graph.NodeID, error) {
	data, err := os.ReadFile(s.Path(label, graphName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, seedstore.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var ids []graph.NodeID
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			ids = append(ids, graph.NodeID(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(label, graphName), err)
	}
	return ids, nil
}

// Save writes the plan through a temporary file so a crash never leaves a
// truncated plan behind.
func (s *Store) Save(ctx context.Context, label, graphName string, plan model.SeedPlan) error {
	path := s.Path(label, graphName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create seed directory: %w", err)
	}

	var buf bytes.Buffer
	for _, id := range plan.Flatten() {
		buf.WriteString(string(id))
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+graphName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move seeds into %s: %w", path, err)
	}
	return nil
}
