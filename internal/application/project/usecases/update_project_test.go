package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/domain/project"
	sharederrors "leadloft/internal/shared/errors"
)

func TestUpdateProject_Rename(t *testing.T) {
	proj, err := project.NewProject(1, 10, "Old name")
	require.NoError(t, err)
	require.NoError(t, proj.SetID(5))

	updated := false
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, projectID uint) (*project.Project, error) {
			return proj, nil
		},
		UpdateFunc: func(ctx context.Context, p *project.Project) error {
			updated = true
			assert.Equal(t, "New name", p.Name())
			return nil
		},
	}

	uc := NewUpdateProjectUseCase(projectRepo, &mockLogger{})
	dto, err := uc.Execute(context.Background(), UpdateProjectCommand{
		AgencyID:  1,
		ProjectID: 5,
		Name:      "New name",
	})
	require.NoError(t, err)

	assert.True(t, updated)
	assert.Equal(t, "New name", dto.Name)
}

func TestUpdateProject_EmptyName(t *testing.T) {
	proj, err := project.NewProject(1, 10, "Old name")
	require.NoError(t, err)

	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, projectID uint) (*project.Project, error) {
			return proj, nil
		},
	}

	uc := NewUpdateProjectUseCase(projectRepo, &mockLogger{})
	_, err = uc.Execute(context.Background(), UpdateProjectCommand{
		AgencyID:  1,
		ProjectID: 5,
		Name:      "   ",
	})

	assert.True(t, sharederrors.IsValidationError(err))
	assert.Equal(t, "Old name", proj.Name())
}

func TestUpdateProject_NotFound(t *testing.T) {
	uc := NewUpdateProjectUseCase(&mockProjectRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateProjectCommand{
		AgencyID:  1,
		ProjectID: 404,
		Name:      "New name",
	})

	assert.True(t, sharederrors.IsNotFoundError(err))
}
