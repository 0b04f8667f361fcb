package pipeline

import (
	"fmt"

	"transposer/internal/config"
	"transposer/internal/telemetry"
	"transposer/internal/transform"
	"transposer/sink"
	"transposer/source/kafka"

	_ "transposer/sink/kafka"  // registers "kafka"
	_ "transposer/sink/stdout" // registers "stdout"
)

func Compile(path string, m *telemetry.Metrics) (*Runner, error) {
	r := NewRunner()
	if err := LoadYAML(path, r, m); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

func LoadYAML(path string, r *Runner, m *telemetry.Metrics) error {
	cfg, confPath, err := config.LoadPipelineSpec(path)
	if err != nil {
		return err
	}

	if cfg.Source.Kind != "kafka" {
		return fmt.Errorf("unsupported source %q", cfg.Source.Kind)
	}
	kc, err := config.LoadKafkaSource(confPath)
	if err != nil {
		return err
	}

	src, err := kafka.NewAdapter(cfg.Source.Driver)
	if err != nil {
		return err
	}
	if err = src.Configure(kc); err != nil {
		return err
	}
	r.SetSource(src)

	r.AddStage(NewTransposeStage(transform.NewService(transform.Config{
		Label:   cfg.Transpose.Label,
		Format:  cfg.Transpose.Format,
		Surface: telemetry.SurfacePipeline,
		Metrics: m,
	})))

	for _, name := range cfg.Sinks {
		sDrv, err := sink.NewAdapter(name)
		if err != nil {
			return err
		}

		switch name {
		case "stdout":
			err = sDrv.Configure(cfg.SinkConfigs.Stdout)
		case "kafka":
			err = sDrv.Configure(cfg.SinkConfigs.Kafka)
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return err
		}
		r.AddSink(sDrv)
	}
	return nil
}
