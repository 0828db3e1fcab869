package services

import (
	"context"
	"fmt"

	"github.com/facilitydesk/core/internal/domain/entities"
	"github.com/facilitydesk/core/internal/infrastructure/logger"
	"github.com/facilitydesk/core/internal/ports"
)

// CatalogService returns the facility collections unchanged
type CatalogService struct {
	serviceRepo   ports.ServiceRepository
	checklistRepo ports.ChecklistRepository
	taskRepo      ports.TaskRepository
	logger        *logger.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo ports.ServiceRepository, checklistRepo ports.ChecklistRepository, taskRepo ports.TaskRepository, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		serviceRepo:   serviceRepo,
		checklistRepo: checklistRepo,
		taskRepo:      taskRepo,
		logger:        logger.WithComponent("catalog"),
	}
}

// ListServices returns every service in insertion order
func (s *CatalogService) ListServices(ctx context.Context) ([]entities.Service, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	s.logger.Debugw("Listed services", "count", len(services))
	return services, nil
}

// ListChecklists returns every checklist in insertion order
func (s *CatalogService) ListChecklists(ctx context.Context) ([]entities.Checklist, error) {
	checklists, err := s.checklistRepo.ListChecklists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	s.logger.Debugw("Listed checklists", "count", len(checklists))
	return checklists, nil
}

// ListTasks returns every task in insertion order
func (s *CatalogService) ListTasks(ctx context.Context) ([]entities.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.logger.Debugw("Listed tasks", "count", len(tasks))
	return tasks, nil
}
