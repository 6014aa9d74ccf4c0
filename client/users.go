package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/buildrun/unihub-client/domain"
)

// UserService wraps the admin-facing /users resource.
type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return do[[]domain.User](ctx, s.c, http.MethodGet, "/users", nil, nil)
}

func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	return do[domain.User](ctx, s.c, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil)
}

// UpdateRole promotes or demotes a user.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role domain.Role) (domain.User, error) {
	path := fmt.Sprintf("/users/%d/role", id)
	return do[domain.User](ctx, s.c, http.MethodPut, path, nil, domain.UpdateRoleRequest{Role: role})
}
