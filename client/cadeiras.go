package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buildrun/unihub-client/domain"
)

// CadeiraService wraps the /cadeiras resource.
type CadeiraService struct {
	c *Client
}

func NewCadeiraService(c *Client) *CadeiraService {
	return &CadeiraService{c: c}
}

func (s *CadeiraService) List(ctx context.Context, page, size int) (domain.Page[domain.Cadeira], error) {
	return do[domain.Page[domain.Cadeira]](ctx, s.c, http.MethodGet, "/cadeiras", pageQuery(page, size), nil)
}

// ListAll returns the unpaginated list used by selection dropdowns.
func (s *CadeiraService) ListAll(ctx context.Context) ([]domain.Cadeira, error) {
	return do[[]domain.Cadeira](ctx, s.c, http.MethodGet, "/cadeiras/all", nil, nil)
}

func (s *CadeiraService) Get(ctx context.Context, id int64) (domain.Cadeira, error) {
	return do[domain.Cadeira](ctx, s.c, http.MethodGet, fmt.Sprintf("/cadeiras/%d", id), nil, nil)
}

func (s *CadeiraService) Create(ctx context.Context, cadeira domain.Cadeira) (domain.Cadeira, error) {
	return do[domain.Cadeira](ctx, s.c, http.MethodPost, "/cadeiras", nil, cadeira)
}

func (s *CadeiraService) Update(ctx context.Context, id int64, cadeira domain.Cadeira) (domain.Cadeira, error) {
	return do[domain.Cadeira](ctx, s.c, http.MethodPut, fmt.Sprintf("/cadeiras/%d", id), nil, cadeira)
}

func (s *CadeiraService) Delete(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, s.c, http.MethodDelete, fmt.Sprintf("/cadeiras/%d", id), nil, nil)
	return err
}
