package config

import (
	"fmt"

	kcfg "transposer/source/kafka"
)

// LoadKafkaSource loads the Kafka source config a pipeline points at and
// checks that it names something to consume.
func LoadKafkaSource(path string) (kcfg.Config, error) {
	cfg, err := kcfg.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("kafka source %s: %w", path, err)
	}
	switch {
	case len(cfg.Brokers) == 0:
		return cfg, fmt.Errorf("kafka source %s: no brokers", path)
	case len(cfg.Topics) == 0:
		return cfg, fmt.Errorf("kafka source %s: no topics", path)
	}
	return cfg, nil
}
