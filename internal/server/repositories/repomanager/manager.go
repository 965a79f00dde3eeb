package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/artworks"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/events"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code path
// serves plain queries and transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Artworks(db dbx.DBTX) artworks.Repository
	Events(db dbx.DBTX) events.Repository
	Users(db dbx.DBTX) users.Repository
}
