package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buildrun/unihub-client/domain"
)

// CursoService wraps the /cursos resource.
type CursoService struct {
	c *Client
}

func NewCursoService(c *Client) *CursoService {
	return &CursoService{c: c}
}

func (s *CursoService) List(ctx context.Context, page, size int) (domain.Page[domain.Curso], error) {
	return do[domain.Page[domain.Curso]](ctx, s.c, http.MethodGet, "/cursos", pageQuery(page, size), nil)
}

func (s *CursoService) Get(ctx context.Context, id int64) (domain.Curso, error) {
	return do[domain.Curso](ctx, s.c, http.MethodGet, fmt.Sprintf("/cursos/%d", id), nil, nil)
}

func (s *CursoService) Create(ctx context.Context, curso domain.Curso) (domain.Curso, error) {
	return do[domain.Curso](ctx, s.c, http.MethodPost, "/cursos", nil, curso)
}

func (s *CursoService) Update(ctx context.Context, id int64, curso domain.Curso) (domain.Curso, error) {
	return do[domain.Curso](ctx, s.c, http.MethodPut, fmt.Sprintf("/cursos/%d", id), nil, curso)
}

func (s *CursoService) Delete(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, s.c, http.MethodDelete, fmt.Sprintf("/cursos/%d", id), nil, nil)
	return err
}
