package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buildrun/unihub-client/domain"
)

// ComentarioService wraps the comment voting endpoints. Comments themselves
// are created through evaluation submissions and read through the evaluation
// listings; only the votes have a resource of their own.
type ComentarioService struct {
	c *Client
}

func NewComentarioService(c *Client) *ComentarioService {
	return &ComentarioService{c: c}
}

// Upvote registers a positive vote and returns the updated comment.
func (s *ComentarioService) Upvote(ctx context.Context, comentarioID int64) (domain.ComentarioPublic, error) {
	return s.vote(ctx, comentarioID, "up")
}

// Downvote registers a negative vote and returns the updated comment.
func (s *ComentarioService) Downvote(ctx context.Context, comentarioID int64) (domain.ComentarioPublic, error) {
	return s.vote(ctx, comentarioID, "down")
}

func (s *ComentarioService) vote(ctx context.Context, comentarioID int64, direction string) (domain.ComentarioPublic, error) {
	path := fmt.Sprintf("/comentarios/%d/vote/%s", comentarioID, direction)
	return do[domain.ComentarioPublic](ctx, s.c, http.MethodPost, path, nil, struct{}{})
}
