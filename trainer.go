package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// TrainerService manages the "about the trainer" profiles. The profile
// photo goes under the "mainImage" multipart field.
type TrainerService struct {
	crud
}

func (s *TrainerService) All(ctx context.Context) ([]models.TrainerProfile, error) {
	return listAll[models.TrainerProfile](ctx, s.crud)
}

func (s *TrainerService) Active(ctx context.Context, filter Filter) ([]models.TrainerProfile, error) {
	return listActive[models.TrainerProfile](ctx, s.crud, filter)
}

func (s *TrainerService) Get(ctx context.Context, id int64) (models.TrainerProfile, error) {
	return getOne[models.TrainerProfile](ctx, s.crud, id)
}

func (s *TrainerService) Create(ctx context.Context, payload *forms.Payload) (models.TrainerProfile, error) {
	return createOne[models.TrainerProfile](ctx, s.crud, payload)
}

func (s *TrainerService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.TrainerProfile, error) {
	return updateOne[models.TrainerProfile](ctx, s.crud, id, payload)
}

func (s *TrainerService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
