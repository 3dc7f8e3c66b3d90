package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
)

// connectivityProbeQuery is the cheapest round trip PostgreSQL offers. The
// probe must reach the server and come back; it must not depend on any
// application table.
const connectivityProbeQuery = `SELECT 1;`

// CheckConnectivity verifies that the database is reachable by executing a
// trivial query over a dedicated connection checked out for this probe only.
//
// The connection is returned to the pool when the probe finishes, success or
// failure, so a failed probe never pins a broken connection and repeated
// probes do not accumulate sessions. The error, if any, describes the probe
// failure; callers decide how to report it.
func (db *DB) CheckConnectivity(ctx context.Context) error {
	log := logger.FromContext(ctx)

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*DB.CheckConnectivity").Msg("error obtaining connection for probe")
		return fmt.Errorf("database connectivity check failed: %w", err)
	}
	defer conn.Close()

	var one int
	if err := conn.QueryRowContext(ctx, connectivityProbeQuery).Scan(&one); err != nil {
		log.Err(err).Str("func", "*DB.CheckConnectivity").Msg("connectivity probe query failed")
		return fmt.Errorf("database connectivity check failed: %w", err)
	}

	return nil
}
