package engine

import (
	"context"
	"fmt"

	"transposer/internal/config"
	"transposer/internal/logging"
	"transposer/internal/pipeline"
	"transposer/internal/telemetry"
	"transposer/internal/transform"
	"transposer/internal/transport"
)

func Bootstrap(ctx context.Context, cfg config.App) (*Engine, error) {
	// 1. transport server
	svc := transform.NewService(transform.Config{
		Label:   cfg.Label,
		Format:  cfg.Format,
		Surface: telemetry.SurfaceGRPC,
		Metrics: telemetry.Default,
	})
	srv, err := transport.StartServer(cfg.GRPC.Port, svc)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	// 2. pipeline runner
	var runner *pipeline.Runner
	if cfg.Pipeline != "" {
		runner, err = pipeline.Compile(cfg.Pipeline, telemetry.Default)
		if err != nil {
			srv.Stop()
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		if err := runner.Start(ctx); err != nil {
			srv.Stop()
			_ = runner.Close()
			return nil, err
		}
	}

	// 3. metrics
	if cfg.Metrics.Enabled {
		telemetry.Expose(cfg.Metrics.Port)
	}

	logging.L().Info("engine started",
		"grpc_addr", srv.Addr().String(), "metrics", cfg.Metrics.Enabled, "metrics_port", cfg.Metrics.Port,
		"pipeline", cfg.Pipeline != "", "label", cfg.Label, "format", cfg.Format)
	return &Engine{
		transport: srv,
		runner:    runner,
	}, nil
}
