package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buildrun/unihub-client/domain"
)

// CriterioService wraps the /criterios resource.
type CriterioService struct {
	c *Client
}

func NewCriterioService(c *Client) *CriterioService {
	return &CriterioService{c: c}
}

func (s *CriterioService) List(ctx context.Context, page, size int) (domain.Page[domain.Criterio], error) {
	return do[domain.Page[domain.Criterio]](ctx, s.c, http.MethodGet, "/criterios", pageQuery(page, size), nil)
}

// ListAll returns the unpaginated list used by evaluation forms.
func (s *CriterioService) ListAll(ctx context.Context) ([]domain.Criterio, error) {
	return do[[]domain.Criterio](ctx, s.c, http.MethodGet, "/criterios/all", nil, nil)
}

func (s *CriterioService) Get(ctx context.Context, id int64) (domain.Criterio, error) {
	return do[domain.Criterio](ctx, s.c, http.MethodGet, fmt.Sprintf("/criterios/%d", id), nil, nil)
}

func (s *CriterioService) Create(ctx context.Context, criterio domain.Criterio) (domain.Criterio, error) {
	return do[domain.Criterio](ctx, s.c, http.MethodPost, "/criterios", nil, criterio)
}

func (s *CriterioService) Update(ctx context.Context, id int64, criterio domain.Criterio) (domain.Criterio, error) {
	return do[domain.Criterio](ctx, s.c, http.MethodPut, fmt.Sprintf("/criterios/%d", id), nil, criterio)
}

func (s *CriterioService) Delete(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, s.c, http.MethodDelete, fmt.Sprintf("/criterios/%d", id), nil, nil)
	return err
}
