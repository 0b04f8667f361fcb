package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"transposer/frame"
	"transposer/internal/spec"
	"transposer/sink"
)

type Config = spec.KafkaSink

type driver struct {
	cfg Config
	p   sarama.SyncProducer
}

// NewWithProducer builds a sink around an existing producer.
func NewWithProducer(topic string, p sarama.SyncProducer) sink.Adapter {
	return &driver{cfg: Config{Topic: topic}, p: p}
}

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: want Config, got %T", c)
	}
	if cfg.Topic == "" {
		return errors.New("kafka-sink: topic is required")
	}
	sc, err := producerConfig(cfg)
	if err != nil {
		return err
	}
	d.cfg = cfg
	d.p, err = sarama.NewSyncProducer(cfg.Brokers, sc)
	return err
}

// producerConfig defaults required_acks to the leader's acknowledgement.
// The source marks an offset once Push returns, so acks 0 trades
// at-least-once delivery for throughput and has to be asked for.
func producerConfig(cfg Config) (*sarama.Config, error) {
	acks := sarama.WaitForLocal
	if cfg.Acks != nil {
		acks = sarama.RequiredAcks(*cfg.Acks)
	}
	switch acks {
	case sarama.NoResponse, sarama.WaitForLocal, sarama.WaitForAll:
	default:
		return nil, fmt.Errorf("kafka-sink: required_acks %d not one of 0, 1, -1", acks)
	}
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = acks
	sc.Producer.Return.Successes = true
	return sc, nil
}

func (d *driver) Push(f *frame.Frame) error {
	msg := &sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Value: sarama.ByteEncoder(f.Value),
	}
	if len(f.Key) > 0 {
		msg.Key = sarama.ByteEncoder(f.Key)
	}
	for k, v := range f.Headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(k), Value: v})
	}
	_, _, err := d.p.SendMessage(msg)
	return err
}

func (d *driver) Close() error {
	if d.p == nil {
		return nil
	}
	p := d.p
	d.p = nil
	return p.Close()
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }
