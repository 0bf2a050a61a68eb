package environment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sagarc03/ragenv/ollama"
)

// Role names which of the two model servers a container is.
type Role string

const (
	RoleEmbedding  Role = "embedding"
	RoleGenerative Role = "generative"
)

// ServerSpec describes one model server to launch.
type ServerSpec struct {
	Role          Role
	Model         string
	Image         string
	Port          int
	CacheDir      string
	ContainerName string
	MemoryLimit   int64
	SessionID     string
}

// Server is a running model server.
type Server struct {
	Spec   ServerSpec
	URL    string
	Client *ollama.Client

	terminate func(context.Context) error
}

// NewServer wraps a server reachable at url. terminate stops it and may be nil.
func NewServer(spec ServerSpec, url string, terminate func(context.Context) error, opts ...ollama.Option) (*Server, error) {
	client, err := ollama.New(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", spec.Role, err)
	}
	return &Server{Spec: spec, URL: client.BaseURL(), Client: client, terminate: terminate}, nil
}

// Terminate stops the server. It is safe to call more than once.
func (s *Server) Terminate(ctx context.Context) error {
	if s == nil || s.terminate == nil {
		return nil
	}
	stop := s.terminate
	s.terminate = nil
	return stop(ctx)
}

// pull downloads the server's model and logs the outcome.
func (s *Server) pull(ctx context.Context, logger *slog.Logger) error {
	logger.Info("pulling model (this may take a while)", "role", s.Spec.Role, "model", s.Spec.Model)

	status, err := s.Client.Pull(ctx, s.Spec.Model)
	if err != nil {
		return fmt.Errorf("pull %s model: %w", s.Spec.Role, err)
	}

	logger.Info("done pulling model", "role", s.Spec.Role, "model", s.Spec.Model, "status", status)
	return nil
}

// Launcher starts model servers.
type Launcher interface {
	Launch(ctx context.Context, spec ServerSpec) (*Server, error)
}
