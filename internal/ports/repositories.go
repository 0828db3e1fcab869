package ports

import (
	"context"

	"github.com/facilitydesk/core/internal/domain/entities"
)

// AccountRepository defines lookup of login accounts
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
}

// ServiceRepository defines read access to services
type ServiceRepository interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
}

// ChecklistRepository defines read access to checklists
type ChecklistRepository interface {
	ListChecklists(ctx context.Context) ([]entities.Checklist, error)
}

// TaskRepository defines read access to tasks
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]entities.Task, error)
}

// CatalogRepository groups the read-only collections served by the API
type CatalogRepository interface {
	ServiceRepository
	ChecklistRepository
	TaskRepository
}
