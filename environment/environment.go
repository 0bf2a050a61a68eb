package environment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sagarc03/ragenv/config"
	"github.com/sagarc03/ragenv/ollama"
)

type options struct {
	logger   *slog.Logger
	launcher Launcher
}

// Option configures Setup.
type Option func(*options)

// WithLogger sets the logger for lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLauncher replaces the container launcher.
func WithLauncher(l Launcher) Option {
	return func(o *options) {
		o.launcher = l
	}
}

// Environment is the pair of model servers backing a test session.
type Environment struct {
	SessionID  string
	Embedding  *Server
	Generative *Server

	logger *slog.Logger
}

// Specs derives the two server specs from the application config and the
// harness settings.
func Specs(app *config.AppConfig, s *Settings, sessionID string) (embedding, generative ServerSpec, err error) {
	if app.EmbeddingLlm == nil {
		return ServerSpec{}, ServerSpec{}, fmt.Errorf("%w: embedding_llm", ErrModelNotConfigured)
	}
	if app.GenerativeLlm == nil {
		return ServerSpec{}, ServerSpec{}, fmt.Errorf("%w: generative_llm", ErrModelNotConfigured)
	}

	embedding = ServerSpec{
		Role:          RoleEmbedding,
		Model:         app.EmbeddingLlm.ModelName,
		Image:         s.Image,
		Port:          s.Embedding.Port,
		CacheDir:      filepath.Join(s.DataDir, s.Embedding.CacheDir),
		ContainerName: s.Embedding.ContainerName,
		MemoryLimit:   s.MemoryLimit,
		SessionID:     sessionID,
	}
	generative = ServerSpec{
		Role:          RoleGenerative,
		Model:         app.GenerativeLlm.ModelName,
		Image:         s.Image,
		Port:          s.Generative.Port,
		CacheDir:      filepath.Join(s.DataDir, s.Generative.CacheDir),
		ContainerName: s.Generative.ContainerName,
		MemoryLimit:   s.MemoryLimit,
		SessionID:     sessionID,
	}
	return embedding, generative, nil
}

// Setup starts the embedding server, then the generative server, and pulls
// each server's model. If any step fails, servers already started are
// terminated before the error is returned.
func Setup(ctx context.Context, app *config.AppConfig, s *Settings, opts ...Option) (*Environment, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.launcher == nil {
		o.launcher = &ContainerLauncher{StartupTimeout: s.StartupTimeout, Logger: o.logger}
	}

	env := &Environment{SessionID: uuid.NewString(), logger: o.logger}
	o.logger.Info("setup test environment", "session", env.SessionID)

	embedding, generative, err := Specs(app, s, env.SessionID)
	if err != nil {
		o.logger.Error("error setting up environment", "err", err)
		return nil, err
	}

	if env.Embedding, err = env.start(ctx, o.launcher, embedding); err != nil {
		return nil, env.abort(ctx, err)
	}
	if env.Generative, err = env.start(ctx, o.launcher, generative); err != nil {
		return nil, env.abort(ctx, err)
	}

	return env, nil
}

func (e *Environment) start(ctx context.Context, l Launcher, spec ServerSpec) (*Server, error) {
	srv, err := l.Launch(ctx, spec)
	if err != nil {
		return nil, err
	}
	if err := srv.pull(ctx, e.logger); err != nil {
		_ = srv.Terminate(ctx)
		return nil, err
	}
	return srv, nil
}

func (e *Environment) abort(ctx context.Context, err error) error {
	e.logger.Error("error setting up environment", "err", err)
	if tErr := e.Teardown(ctx); tErr != nil {
		e.logger.Warn("teardown after failed setup", "err", tErr)
	}
	return err
}

// Servers returns the running servers in start order.
func (e *Environment) Servers() []*Server {
	var servers []*Server
	for _, s := range []*Server{e.Embedding, e.Generative} {
		if s != nil {
			servers = append(servers, s)
		}
	}
	return servers
}

// HealthCheck verifies that every server answers its model list and that
// the list contains the configured model.
func (e *Environment) HealthCheck(ctx context.Context) error {
	var errs []error
	for _, s := range e.Servers() {
		ok, err := s.Client.HasModel(ctx, s.Spec.Model)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s health check: %w", s.Spec.Role, err))
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s server has no %q", ErrModelUnavailable, s.Spec.Role, s.Spec.Model))
		}
	}
	return errors.Join(errs...)
}

// Teardown terminates every server that is still running.
func (e *Environment) Teardown(ctx context.Context) error {
	e.logger.Info("tearing down the test environment", "session", e.SessionID)

	var errs []error
	for _, s := range e.Servers() {
		if err := s.Terminate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("terminate %s: %w", s.Spec.Role, err))
		}
	}
	return errors.Join(errs...)
}

// Attach returns an Environment for servers that are already running on
// the configured ports, e.g. ones started by another process. Teardown on
// the result does not stop them.
func Attach(app *config.AppConfig, s *Settings, opts ...Option) (*Environment, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	embedding, generative, err := Specs(app, s, "")
	if err != nil {
		return nil, err
	}

	env := &Environment{logger: o.logger}
	clientOpts := []ollama.Option{ollama.WithLogger(o.logger)}
	if env.Embedding, err = NewServer(embedding, localURL(embedding.Port), nil, clientOpts...); err != nil {
		return nil, err
	}
	if env.Generative, err = NewServer(generative, localURL(generative.Port), nil, clientOpts...); err != nil {
		return nil, err
	}
	return env, nil
}

func localURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}
