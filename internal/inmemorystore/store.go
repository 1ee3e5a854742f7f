// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the seedstore.Store interface.
//
// # Concurrency Model
//
// Plans are kept in a sync.Map keyed by "label/graph". Keys are written once
// per strategy and read at most once per run, so there is no contention worth
// a global lock.
package inmemorystore

import (
	"context"
	"sync"

	"github.com/specialistvlad/seedgrid/internal/graph"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/specialistvlad/seedgrid/internal/seedstore"
)

// Store is an in-memory seedstore.Store.
type Store struct {
	plans sync.Map // Key: "label/graph", Value: []graph.NodeID
}

var _ seedstore.Store = (*Store)(nil)

// New creates a new, empty in-memory seed store.
func New() *Store {
	return &Store{}
}

func key(label, graphName string) string {
	return label + "/" + graphName
}

// Exists reports whether a plan is stored for (label, graphName).
func (s *Store) Exists(ctx context.Context, label, graphName string) (bool, error) {
	_, ok := s.plans.Load(key(label, graphName))
	return ok, nil
}

// Load returns a copy of the stored ids.
func (s *Store) Load(ctx context.Context, label, graphName string) ([]graph.NodeID, error) {
	v, ok := s.plans.Load(key(label, graphName))
	if !ok {
		return nil, seedstore.ErrNotFound
	}
	return append([]graph.NodeID(nil), v.([]graph.NodeID)...), nil
}

// Save stores the flattened plan.
func (s *Store) Save(ctx context.Context, label, graphName string, plan model.SeedPlan) error {
	s.plans.Store(key(label, graphName), plan.Flatten())
	return nil
}
