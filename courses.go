package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// CoursesService manages training courses.
type CoursesService struct {
	crud
}

func (s *CoursesService) All(ctx context.Context) ([]models.Course, error) {
	return listAll[models.Course](ctx, s.crud)
}

func (s *CoursesService) Active(ctx context.Context, filter Filter) ([]models.Course, error) {
	return listActive[models.Course](ctx, s.crud, filter)
}

func (s *CoursesService) Get(ctx context.Context, id int64) (models.Course, error) {
	return getOne[models.Course](ctx, s.crud, id)
}

func (s *CoursesService) Create(ctx context.Context, payload *forms.Payload) (models.Course, error) {
	return createOne[models.Course](ctx, s.crud, payload)
}

func (s *CoursesService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.Course, error) {
	return updateOne[models.Course](ctx, s.crud, id, payload)
}

func (s *CoursesService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
