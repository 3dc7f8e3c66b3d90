// Command healthprobe checks a running deployment from the outside.
//
// It calls GET /health and GET /health/db on the target base URL and exits 0
// only when both answer 200. Deployment scripts and container health checks
// use the exit code; the JSON bodies are logged for operators.
package main

import (
	"flag"
	"time"

	"github.com/MKhiriev/go-deploy-gate/internal/logger"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
)

const probeTimeout = 10 * time.Second

func main() {
	log := logger.NewLogger("deploy-gate-healthprobe")

	baseURL := flag.String("url", "http://localhost:8000", "base URL of the deployment to probe")
	flag.Parse()

	client := utils.NewHTTPClient()
	client.SetBaseURL(*baseURL)
	client.SetTimeout(probeTimeout)

	failed := false
	for _, path := range []string{"/health", "/health/db"} {
		resp, err := client.R().Get(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("probe request failed")
			failed = true
			continue
		}

		if resp.IsError() {
			log.Error().
				Str("path", path).
				Int("status", resp.StatusCode()).
				Str("body", resp.String()).
				Msg("probe reported unhealthy")
			failed = true
			continue
		}

		log.Info().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("probe ok")
	}

	if failed {
		log.Fatal().Msg("deployment is unhealthy")
	}

	log.Info().Msg("deployment is healthy")
}
