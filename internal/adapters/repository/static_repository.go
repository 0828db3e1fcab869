package repository

import (
	"context"

	"github.com/facilitydesk/core/internal/domain/entities"
	"github.com/facilitydesk/core/internal/ports"
)

// StaticRepository serves compiled-in collections. The seeded slices are
// never handed out directly, so callers cannot mutate them.
type StaticRepository struct {
	services   []entities.Service
	checklists []entities.Checklist
	tasks      []entities.Task
}

// NewStaticRepository creates a repository over the seeded collections
func NewStaticRepository() *StaticRepository {
	return NewStaticRepositoryWith(seedServices, seedChecklists, seedTasks)
}

// NewStaticRepositoryWith creates a repository over the given collections.
// The inputs are copied.
func NewStaticRepositoryWith(services []entities.Service, checklists []entities.Checklist, tasks []entities.Task) *StaticRepository {
	return &StaticRepository{
		services:   clone(services),
		checklists: clone(checklists),
		tasks:      clone(tasks),
	}
}

var _ ports.CatalogRepository = (*StaticRepository)(nil)

func (r *StaticRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	return clone(r.services), nil
}

func (r *StaticRepository) ListChecklists(ctx context.Context) ([]entities.Checklist, error) {
	return clone(r.checklists), nil
}

func (r *StaticRepository) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return clone(r.tasks), nil
}

// clone always returns a non-nil slice so empty collections encode as []
func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
