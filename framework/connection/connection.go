package connection

import (
	"context"

	"github.com/doitintl/hello/records-consolidation/config"
	"github.com/doitintl/hello/records-consolidation/consolidation/drive"
	"github.com/doitintl/hello/records-consolidation/logger"
)

// WorkspaceFactory authenticates against Google Workspace with a service account key.
type WorkspaceFactory func(ctx context.Context, credentials []byte) (drive.Service, error)

type Connection struct {
	credentials  []byte
	newWorkspace WorkspaceFactory
}

// NewConnection prepares the clients necessary for api support. Workspace
// clients are authenticated lazily, once per pipeline run.
func NewConnection(ctx context.Context, log *logger.Logging, cfg *config.Config) (*Connection, error) {
	log.Logger(ctx).Infof("google workspace connections will authenticate as %s", cfg.ClientEmail())

	return &Connection{
		credentials:  cfg.Credentials,
		newWorkspace: drive.NewService,
	}, nil
}

// NewConnectionWithFactory is used by tests to replace the workspace clients.
func NewConnectionWithFactory(credentials []byte, factory WorkspaceFactory) *Connection {
	return &Connection{
		credentials:  credentials,
		newWorkspace: factory,
	}
}

// Workspace authenticates a new workspace connection for a pipeline run.
func (c *Connection) Workspace(ctx context.Context) (drive.Service, error) {
	return c.newWorkspace(ctx, c.credentials)
}

type WorkspaceFromContextFun = func(ctx context.Context) (drive.Service, error)
