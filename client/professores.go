package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/buildrun/unihub-client/domain"
)

// ProfessorService wraps the /professores resource.
type ProfessorService struct {
	c *Client
}

func NewProfessorService(c *Client) *ProfessorService {
	return &ProfessorService{c: c}
}

// List returns a page of professors. The periodo filter only applies when the
// filter mode is "periodo", matching the backend contract.
func (s *ProfessorService) List(ctx context.Context, page, size int, filter, periodo string) (domain.Page[domain.Professor], error) {
	q := pageQuery(page, size)
	if filter != "" {
		q.Set("filter", filter)
	}
	if periodo != "" && filter == "periodo" {
		q.Set("periodo", periodo)
	}
	return do[domain.Page[domain.Professor]](ctx, s.c, http.MethodGet, "/professores", q, nil)
}

// Top returns the best-rated professors for the home page.
func (s *ProfessorService) Top(ctx context.Context, limit int) ([]domain.Professor, error) {
	if limit <= 0 {
		limit = 5
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return do[[]domain.Professor](ctx, s.c, http.MethodGet, "/professores/top", q, nil)
}

// Search finds professors by name.
func (s *ProfessorService) Search(ctx context.Context, nome string, page, size int) (domain.Page[domain.Professor], error) {
	q := pageQuery(page, size)
	q.Set("nome", nome)
	return do[domain.Page[domain.Professor]](ctx, s.c, http.MethodGet, "/professores/search", q, nil)
}

func (s *ProfessorService) Get(ctx context.Context, id int64) (domain.ProfessorDetail, error) {
	return do[domain.ProfessorDetail](ctx, s.c, http.MethodGet, fmt.Sprintf("/professores/%d", id), nil, nil)
}

func (s *ProfessorService) Create(ctx context.Context, req domain.ProfessorRequest) (domain.Professor, error) {
	return do[domain.Professor](ctx, s.c, http.MethodPost, "/professores", nil, req)
}

func (s *ProfessorService) Update(ctx context.Context, id int64, req domain.ProfessorRequest) (domain.Professor, error) {
	return do[domain.Professor](ctx, s.c, http.MethodPut, fmt.Sprintf("/professores/%d", id), nil, req)
}

func (s *ProfessorService) Delete(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, s.c, http.MethodDelete, fmt.Sprintf("/professores/%d", id), nil, nil)
	return err
}
