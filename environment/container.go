package environment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	tcollama "github.com/testcontainers/testcontainers-go/modules/ollama"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sagarc03/ragenv/ollama"
)

const (
	ollamaPort   = "11434/tcp"
	ollamaHome   = "/root/.ollama"
	readyPattern = ".*Listening on.*"

	// LabelSession marks every container started by one Setup call.
	LabelSession = "ragenv.session"
	// LabelRole marks a container as the embedding or generative server.
	LabelRole = "ragenv.role"
)

// ContainerLauncher runs each model server in a local Ollama container.
type ContainerLauncher struct {
	// StartupTimeout bounds the wait for the readiness log line.
	StartupTimeout time.Duration
	Logger         *slog.Logger
}

// Launch starts a container for spec, binds its API port to spec.Port on
// the loopback interface, mounts spec.CacheDir as the model cache and waits
// for the server to log that it is listening.
func (l *ContainerLauncher) Launch(ctx context.Context, spec ServerSpec) (*Server, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cacheDir, err := filepath.Abs(spec.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	if err := os.MkdirAll(cacheDir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	ctr, err := tcollama.Run(ctx, spec.Image,
		testcontainers.WithHostConfigModifier(func(hc *container.HostConfig) {
			hc.PortBindings = nat.PortMap{
				nat.Port(ollamaPort): []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: strconv.Itoa(spec.Port)}},
			}
			hc.Binds = append(hc.Binds, cacheDir+":"+ollamaHome+":rw")
			if spec.MemoryLimit > 0 {
				hc.Memory = spec.MemoryLimit
			}
		}),
		testcontainers.WithWaitStrategy(
			wait.ForLog(readyPattern).AsRegexp().WithStartupTimeout(l.StartupTimeout),
		),
		testcontainers.WithLogConsumers(&logConsumer{
			logger: logger.With("container", spec.ContainerName, "role", string(spec.Role)),
		}),
		testcontainers.CustomizeRequestOption(func(req *testcontainers.GenericContainerRequest) error {
			if spec.ContainerName != "" {
				req.Name = spec.ContainerName
			}
			if req.Labels == nil {
				req.Labels = map[string]string{}
			}
			req.Labels[LabelSession] = spec.SessionID
			req.Labels[LabelRole] = string(spec.Role)
			return nil
		}),
	)
	terminate := func(context.Context) error {
		if ctr == nil {
			return nil
		}
		return testcontainers.TerminateContainer(ctr)
	}
	if err != nil {
		_ = terminate(ctx)
		return nil, fmt.Errorf("start %s container: %w", spec.Role, err)
	}

	url, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = terminate(ctx)
		return nil, fmt.Errorf("get %s connection string: %w", spec.Role, err)
	}

	logger.Info("container ready", "role", spec.Role, "container", spec.ContainerName, "url", url)

	srv, err := NewServer(spec, url, terminate, ollama.WithLogger(logger))
	if err != nil {
		_ = terminate(ctx)
		return nil, err
	}
	return srv, nil
}

// logConsumer forwards container output to the logger at debug level.
type logConsumer struct {
	logger *slog.Logger
}

func (c *logConsumer) Accept(l testcontainers.Log) {
	c.logger.Debug(strings.TrimRight(string(l.Content), "\n"), "stream", l.LogType)
}
