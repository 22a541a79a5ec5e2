package adminkit

import (
	"context"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// DomainsService manages the marketing domains records are scoped to.
type DomainsService struct {
	crud
}

func (s *DomainsService) All(ctx context.Context) ([]models.Domain, error) {
	return listAll[models.Domain](ctx, s.crud)
}

func (s *DomainsService) Active(ctx context.Context, filter Filter) ([]models.Domain, error) {
	return listActive[models.Domain](ctx, s.crud, filter)
}

func (s *DomainsService) Get(ctx context.Context, id int64) (models.Domain, error) {
	return getOne[models.Domain](ctx, s.crud, id)
}

func (s *DomainsService) Create(ctx context.Context, payload *forms.Payload) (models.Domain, error) {
	return createOne[models.Domain](ctx, s.crud, payload)
}

func (s *DomainsService) Update(ctx context.Context, id int64, payload *forms.Payload) (models.Domain, error) {
	return updateOne[models.Domain](ctx, s.crud, id, payload)
}

func (s *DomainsService) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.crud, id)
}
