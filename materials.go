package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// MaterialsService manages study materials. Uploads go under the "file"
// multipart field with an optional "image" thumbnail.
type MaterialsService struct {
	crud
}

func (s *MaterialsService) All(ctx context.Context) ([]models.StudyMaterial, error) {
	return listAll[models.StudyMaterial](ctx, s.crud)
}

func (s *MaterialsService) Active(ctx context.Context, filter Filter) ([]models.StudyMaterial, error) {
	return listActive[models.StudyMaterial](ctx, s.crud, filter)
}

func (s *MaterialsService) Get(ctx context.Context, id int64) (models.StudyMaterial, error) {
	return getOne[models.StudyMaterial](ctx, s.crud, id)
}

func (s *MaterialsService) Create(ctx context.Context, payload *forms.Payload) (models.StudyMaterial, error) {
	return createOne[models.StudyMaterial](ctx, s.crud, payload)
}

func (s *MaterialsService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.StudyMaterial, error) {
	return updateOne[models.StudyMaterial](ctx, s.crud, id, payload)
}

func (s *MaterialsService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
