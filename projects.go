package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// ProjectsService manages showcase projects.
type ProjectsService struct {
	crud
}

// All lists every project, drafts included.
func (s *ProjectsService) All(ctx context.Context) ([]models.Project, error) {
	return listAll[models.Project](ctx, s.crud)
}

// Active lists published projects, optionally filtered by domain/course.
func (s *ProjectsService) Active(ctx context.Context, filter Filter) ([]models.Project, error) {
	return listActive[models.Project](ctx, s.crud, filter)
}

// Get fetches one project by id.
func (s *ProjectsService) Get(ctx context.Context, id int64) (models.Project, error) {
	return getOne[models.Project](ctx, s.crud, id)
}

// Create submits a multipart payload and returns the created record.
func (s *ProjectsService) Create(ctx context.Context, payload *forms.Payload) (models.Project, error) {
	return createOne[models.Project](ctx, s.crud, payload)
}

// Update submits a multipart payload, possibly partial, and returns the
// updated record.
func (s *ProjectsService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.Project, error) {
	return updateOne[models.Project](ctx, s.crud, id, payload)
}

// Delete removes one project by id.
func (s *ProjectsService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
