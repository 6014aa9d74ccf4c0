// Package unihub assembles the typed Go client for the unihub backend: a
// durable session with an observable current user, login flows covering both
// observed backend revisions, bearer/error/metrics transport decorators, and
// one service per REST resource.
package unihub

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/buildrun/unihub-client/auth"
	"github.com/buildrun/unihub-client/client"
	"github.com/buildrun/unihub-client/config"
	"github.com/buildrun/unihub-client/pkg/logger"
	"github.com/buildrun/unihub-client/session"
	"github.com/buildrun/unihub-client/transport"
)

const defaultHTTPTimeout = 15 * time.Second

// Client is the assembled SDK. All fields are wired by New and safe to use
// directly.
type Client struct {
	Config  *config.Config
	Session *session.Session
	Auth    *auth.Service

	Professores *client.ProfessorService
	Cadeiras    *client.CadeiraService
	Criterios   *client.CriterioService
	Cursos      *client.CursoService
	Comentarios *client.ComentarioService
	Avaliacoes  *client.AvaliacaoService
	Users       *client.UserService

	// HTTP carries the full transport chain (metrics, bearer, error watch)
	// for callers that need endpoints outside the typed services.
	HTTP *http.Client

	redis *goredis.Client
	log   zerolog.Logger
}

type options struct {
	store      session.Store
	notifier   transport.Notifier
	interp     auth.Interpreter
	logoutHook func(redirectTo string)
}

type Option func(*options)

// WithStore overrides the configured session store backend.
func WithStore(store session.Store) Option {
	return func(o *options) { o.store = store }
}

// WithNotifier replaces the log-backed notice presenter.
func WithNotifier(n transport.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithInterpreter pins the login response interpretation instead of sniffing.
func WithInterpreter(i auth.Interpreter) Option {
	return func(o *options) { o.interp = i }
}

// WithLogoutHook installs the navigation side effect fired on logout.
func WithLogoutHook(fn func(redirectTo string)) Option {
	return func(o *options) { o.logoutHook = fn }
}

// New wires a client from configuration. A nil cfg loads from the environment.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		loaded, err := config.Load(ctx)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	c := &Client{Config: cfg, log: log}

	store := o.store
	if store == nil {
		var err error
		store, err = c.openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	logoutHook := o.logoutHook
	if logoutHook == nil {
		logoutHook = func(redirectTo string) {
			log.Info().Str("redirect", redirectTo).Msg("session ended, returning to login")
		}
	}
	c.Session = session.New(ctx, store,
		session.WithLogger(log),
		session.WithLogoutHook(logoutHook),
	)

	notifier := o.notifier
	if notifier == nil {
		notifier = transport.LogNotifier{Log: log}
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	c.HTTP = &http.Client{
		Timeout: timeout,
		Transport: &transport.Metrics{
			Base: &transport.ErrorWatch{
				Base:      &transport.Bearer{Tokens: c.Session},
				Session:   c.Session,
				Notifier:  notifier,
				LoginPath: cfg.LoginPath,
			},
		},
	}

	authOpts := []auth.Option{
		auth.WithPaths(cfg.LoginPath, cfg.RegisterPath),
		auth.WithLogger(log),
	}
	if o.interp != nil {
		authOpts = append(authOpts, auth.WithInterpreter(o.interp))
	}
	c.Auth = auth.NewService(c.HTTP, cfg.APIBaseURL, c.Session, authOpts...)

	base := client.New(cfg.APIBaseURL, c.HTTP, client.WithLogger(log))
	c.Professores = client.NewProfessorService(base)
	c.Cadeiras = client.NewCadeiraService(base)
	c.Criterios = client.NewCriterioService(base)
	c.Cursos = client.NewCursoService(base)
	c.Comentarios = client.NewComentarioService(base)
	c.Avaliacoes = client.NewAvaliacaoService(base)
	c.Users = client.NewUserService(base)

	return c, nil
}

func (c *Client) openStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := session.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("session backend: %w", err)
		}
		c.redis = rdb
		return session.NewRedisStore(rdb, cfg.Redis.KeyPrefix), nil
	case "", "file":
		store, err := session.NewFileStore(cfg.Session.Dir)
		if err != nil {
			return nil, fmt.Errorf("session backend: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("session backend: unknown backend %q", cfg.Session.Backend)
	}
}

// Close releases held connections. Safe on a client using the file store.
func (c *Client) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
