// Package stubapi implements just enough of the unihub backend for the client
// tests to exercise real HTTP round trips: login in every observed response
// shape, registration, and a couple of token-protected resources.
package stubapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Mode selects the login response shape.
type Mode int

const (
	// ModeStructured answers {id, username, email, roles, token}.
	ModeStructured Mode = iota
	// ModeOpaqueText answers the bare token as text/plain.
	ModeOpaqueText
	// ModeOpaqueJSON answers {"token": "..."}.
	ModeOpaqueJSON
)

type account struct {
	ID       int64
	Password string
	Email    string
	Role     string
}

// Backend is an in-memory unihub lookalike. Two fixed accounts exist:
// ana/segredo (administrator, id 1) and bruno/livro (ordinary user, id 7).
type Backend struct {
	Echo   *echo.Echo
	Secret string
	Mode   Mode

	accounts map[string]account
}

func New(mode Mode) *Backend {
	b := &Backend{
		Secret: "stub-secret",
		Mode:   mode,
		accounts: map[string]account{
			"ana":   {ID: 1, Password: "segredo", Email: "a@x.com", Role: "ROLE_ADMIN"},
			"bruno": {ID: 7, Password: "livro", Email: "b@x.com", Role: "ROLE_USER"},
		},
	}

	e := echo.New()
	e.HideBanner = true
	e.POST("/api/users/login", b.login)
	e.POST("/api/users/register", b.register)
	e.GET("/api/professores", b.professores, b.requireToken)
	e.GET("/api/users", b.users, b.requireToken)
	b.Echo = e
	return b
}

// Start serves the backend on an ephemeral port. Callers own the server.
func (b *Backend) Start() *httptest.Server {
	return httptest.NewServer(b.Echo)
}

func (b *Backend) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}

	acct, ok := b.accounts[req.Username]
	if !ok || acct.Password != req.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Credenciais inválidas. Verifique seu nome de usuário e senha."})
	}

	token, err := b.mint(req.Username, acct)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "token generation failed"})
	}

	switch b.Mode {
	case ModeOpaqueText:
		return c.String(http.StatusOK, token)
	case ModeOpaqueJSON:
		return c.JSON(http.StatusOK, echo.Map{"token": token})
	default:
		return c.JSON(http.StatusOK, echo.Map{
			"id":       acct.ID,
			"username": req.Username,
			"email":    acct.Email,
			"roles":    []string{acct.Role},
			"token":    token,
		})
	}
}

func (b *Backend) register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	if _, exists := b.accounts[req.Username]; exists {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Usuário já existe."})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Usuário registrado com sucesso!"})
}

func (b *Backend) professores(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"content": []echo.Map{
			{"id": 10, "nomeCompleto": "Carlos Drummond", "notaGeral": 4.5},
			{"id": 11, "nomeCompleto": "Cecília Meireles", "notaGeral": 4.8},
		},
		"totalElements": 2,
		"totalPages":    1,
		"number":        0,
		"size":          20,
		"first":         true,
		"last":          true,
	})
}

func (b *Backend) users(c echo.Context) error {
	out := make([]echo.Map, 0, len(b.accounts))
	for name, acct := range b.accounts {
		out = append(out, echo.Map{"id": acct.ID, "username": name, "email": acct.Email, "role": acct.Role})
	}
	return c.JSON(http.StatusOK, out)
}

func (b *Backend) mint(username string, acct account) (string, error) {
	claims := jwt.MapClaims{
		"userId":   acct.ID,
		"username": username,
		"email":    acct.Email,
		"role":     acct.Role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(b.Secret))
}

// requireToken rejects requests without a valid bearer token, mirroring the
// real backend's filter chain.
func (b *Backend) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing authorization header"})
		}

		tkn, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(b.Secret), nil
		})
		if err != nil || !tkn.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
		}
		return next(c)
	}
}
