package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// TestimonialsService manages written testimonials.
type TestimonialsService struct {
	crud
}

func (s *TestimonialsService) All(ctx context.Context) ([]models.Testimonial, error) {
	return listAll[models.Testimonial](ctx, s.crud)
}

func (s *TestimonialsService) Active(ctx context.Context, filter Filter) ([]models.Testimonial, error) {
	return listActive[models.Testimonial](ctx, s.crud, filter)
}

func (s *TestimonialsService) Get(ctx context.Context, id int64) (models.Testimonial, error) {
	return getOne[models.Testimonial](ctx, s.crud, id)
}

func (s *TestimonialsService) Create(ctx context.Context, payload *forms.Payload) (models.Testimonial, error) {
	return createOne[models.Testimonial](ctx, s.crud, payload)
}

func (s *TestimonialsService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.Testimonial, error) {
	return updateOne[models.Testimonial](ctx, s.crud, id, payload)
}

func (s *TestimonialsService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
