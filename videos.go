package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// VideosService manages video testimonials.
type VideosService struct {
	crud
}

func (s *VideosService) All(ctx context.Context) ([]models.VideoTestimonial, error) {
	return listAll[models.VideoTestimonial](ctx, s.crud)
}

func (s *VideosService) Active(ctx context.Context, filter Filter) ([]models.VideoTestimonial, error) {
	return listActive[models.VideoTestimonial](ctx, s.crud, filter)
}

func (s *VideosService) Get(ctx context.Context, id int64) (models.VideoTestimonial, error) {
	return getOne[models.VideoTestimonial](ctx, s.crud, id)
}

func (s *VideosService) Create(ctx context.Context, payload *forms.Payload) (models.VideoTestimonial, error) {
	return createOne[models.VideoTestimonial](ctx, s.crud, payload)
}

func (s *VideosService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.VideoTestimonial, error) {
	return updateOne[models.VideoTestimonial](ctx, s.crud, id, payload)
}

func (s *VideosService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
