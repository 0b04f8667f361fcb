package spec

type sinkConfigs struct {
	Kafka  KafkaSink  `yaml:"kafka"`
	Stdout StdoutSink `yaml:"stdout"`
}

type KafkaSink struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    *int16   `yaml:"required_acks"` // 0,1,-1; unset waits for the leader
}

type StdoutSink struct {
	PrintCounter bool `yaml:"print_counter"`
}

// TransposeSpec configures the transpose stage between source and sinks.
type TransposeSpec struct {
	Label  string `yaml:"label"`
	Format string `yaml:"format"` // json, yaml, csv, dump
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Source struct {
		Kind   string `yaml:"kind"`
		Driver string `yaml:"driver"`
		Config string `yaml:"config"`
	} `yaml:"source"`

	Transpose TransposeSpec `yaml:"transpose"`

	Sinks       []string    `yaml:"sinks"`
	SinkConfigs sinkConfigs `yaml:"sink_configs"`
}
