package store

import (
	"github.com/MKhiriev/go-deploy-gate/migrations"
)

// Migrate applies all pending schema migrations to the connected database.
// It is invoked by the deployment gate before the server is allowed to start.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
