package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buildrun/unihub-client/domain"
	"github.com/buildrun/unihub-client/pkg/validate"
)

// AvaliacaoService wraps the /avaliacoes resource: submitting evaluations and
// browsing the public history.
type AvaliacaoService struct {
	c         *Client
	validator *validate.Validator
}

func NewAvaliacaoService(c *Client) *AvaliacaoService {
	return &AvaliacaoService{c: c, validator: validate.New()}
}

// Submit posts one evaluation. The payload is validated locally first so a
// malformed form never reaches the network.
func (s *AvaliacaoService) Submit(ctx context.Context, req domain.AvaliacaoRequest) (domain.MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.MessageResponse{}, err
	}
	return do[domain.MessageResponse](ctx, s.c, http.MethodPost, "/avaliacoes", nil, req)
}

// ByProfessorAndCadeira lists public evaluations of a professor teaching a
// cadeira, optionally narrowed to one academic period.
func (s *AvaliacaoService) ByProfessorAndCadeira(ctx context.Context, professorID, cadeiraID int64, periodo string, page, size int) (domain.Page[domain.AvaliacaoPublic], error) {
	q := pageQuery(page, size)
	if periodo != "" {
		q.Set("periodo", periodo)
	}
	path := fmt.Sprintf("/avaliacoes/professor/%d/cadeira/%d", professorID, cadeiraID)
	return do[domain.Page[domain.AvaliacaoPublic]](ctx, s.c, http.MethodGet, path, q, nil)
}

// CriterionHistory lists a professor's evaluations focused on one criterion.
func (s *AvaliacaoService) CriterionHistory(ctx context.Context, professorID, criterioID int64, periodo string, page, size int) (domain.Page[domain.AvaliacaoPublic], error) {
	q := pageQuery(page, size)
	if periodo != "" {
		q.Set("periodo", periodo)
	}
	path := fmt.Sprintf("/avaliacoes/criterio/%d/professor/%d", criterioID, professorID)
	return do[domain.Page[domain.AvaliacaoPublic]](ctx, s.c, http.MethodGet, path, q, nil)
}
