package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/core/internal/domain/entities"
	"github.com/facilitydesk/core/internal/infrastructure/config"
)

func TestStaticRepository_ListServices(t *testing.T) {
	repo := NewStaticRepository()

	services, err := repo.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 3)

	for i, service := range services {
		assert.Equal(t, i+1, service.ID)
	}
	assert.Equal(t, "mo", services[0].ServiceName)
	assert.Equal(t, "Copilot, Connect", services[1].Unit)
	assert.Equal(t, "10/15/2024, 8:35:00 PM", services[2].CreatedOn)
}

func TestStaticRepository_ListChecklists(t *testing.T) {
	repo := NewStaticRepository()

	checklists, err := repo.ListChecklists(context.Background())
	require.NoError(t, err)
	require.Len(t, checklists, 3)

	unset := 0
	for _, checklist := range checklists {
		assert.GreaterOrEqual(t, checklist.NoOfGroups, 1)
		if !checklist.HasPriority() {
			unset++
		}
	}
	assert.Equal(t, 1, unset)
	assert.Equal(t, entities.FrequencyHalfYearly, checklists[1].Frequency)
}

func TestStaticRepository_ListTasks(t *testing.T) {
	repo := NewStaticRepository()

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	var pending, completed int
	for _, task := range tasks {
		switch task.Status {
		case entities.TaskStatusPending:
			pending++
		case entities.TaskStatusCompleted:
			completed++
		}
	}
	assert.Equal(t, 2, pending)
	assert.Equal(t, 1, completed)
	assert.True(t, tasks[2].IsCompleted())
}

func TestStaticRepository_CallersCannotMutateStore(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	services, err := repo.ListServices(ctx)
	require.NoError(t, err)
	services[0].ServiceName = "changed"

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	tasks[0].Status = entities.TaskStatusCompleted

	again, err := repo.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 3)
	assert.Equal(t, "mo", again[0].ServiceName)

	tasksAgain, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusPending, tasksAgain[0].Status)
}

func TestStaticRepositoryWith_CopiesInput(t *testing.T) {
	input := []entities.Service{{ID: 7, ServiceName: "Lobby"}}
	repo := NewStaticRepositoryWith(input, nil, nil)
	input[0].ServiceName = "changed"

	services, err := repo.ListServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lobby", services[0].ServiceName)

	checklists, err := repo.ListChecklists(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, checklists)
	assert.Empty(t, checklists)
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	repo := NewAccountRepository(config.AuthConfig{Email: "sham@gmail.com", Password: "123456"})

	account, err := repo.GetByEmail(context.Background(), "sham@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", account.Password)
	assert.False(t, account.HasPasswordHash())

	_, err = repo.GetByEmail(context.Background(), "SHAM@gmail.com")
	assert.ErrorIs(t, err, entities.ErrAccountNotFound)

	_, err = repo.GetByEmail(context.Background(), "")
	assert.ErrorIs(t, err, entities.ErrAccountNotFound)
}
