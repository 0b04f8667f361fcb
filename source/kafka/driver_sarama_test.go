package kafka

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transposer/frame"
)

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32                        { return nil }
func (s *fakeSession) MemberID() string                                  { return "m" }
func (s *fakeSession) GenerationID() int32                               { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)           {}
func (s *fakeSession) Commit()                                           {}
func (s *fakeSession) ResetOffset(string, int32, int64, string)          {}
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) { s.marked = append(s.marked, msg.Offset) }
func (s *fakeSession) Context() context.Context                          { return s.ctx }

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "in" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

func claimOf(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeClaim{ch: ch}
}

func message(offset int64, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Topic:     "in",
		Partition: 0,
		Offset:    offset,
		Value:     []byte(value),
		Timestamp: time.Unix(1700000000, 0),
		Headers:   []*sarama.RecordHeader{{Key: []byte("x-transpose-label"), Value: []byte("Metric")}},
	}
}

func TestGroupHandler_EmitsAndMarks(t *testing.T) {
	var got []*frame.Frame
	h := &groupHandler{emit: func(f *frame.Frame) error {
		got = append(got, f)
		return nil
	}}
	sess := &fakeSession{ctx: context.Background()}

	require.NoError(t, h.ConsumeClaim(sess, claimOf(message(7, `{"a":{"x":1}}`), message(8, `{}`))))

	require.Len(t, got, 2)
	assert.Equal(t, []int64{7, 8}, sess.marked)
	assert.Equal(t, `{"a":{"x":1}}`, string(got[0].Value))
	assert.Equal(t, int64(7), got[0].Offset)
	label, ok := got[0].Header("x-transpose-label")
	assert.True(t, ok)
	assert.Equal(t, "Metric", label)
}

func TestGroupHandler_EmitErrorStopsWithoutMark(t *testing.T) {
	boom := errors.New("sink down")
	h := &groupHandler{emit: func(*frame.Frame) error { return boom }}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, claimOf(message(1, `{}`), message(2, `{}`)))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, sess.marked)
}

func TestGroupHandler_StopsOnSessionDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := &groupHandler{emit: func(*frame.Frame) error { return nil }}

	claim := &fakeClaim{ch: make(chan *sarama.ConsumerMessage)}
	require.NoError(t, h.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}

func TestSaramaConfig(t *testing.T) {
	cfg := Config{Version: "2.1.0", StartFrom: "oldest", SASLUser: "u", SASLPass: "p"}
	applyDefaults(&cfg)

	sc, err := saramaConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, sarama.OffsetOldest, sc.Consumer.Offsets.Initial)
	assert.True(t, sc.Net.SASL.Enable)
	assert.Equal(t, 5*time.Second, sc.Consumer.Offsets.AutoCommit.Interval)

	_, err = saramaConfig(Config{Version: "not-a-version"})
	require.Error(t, err)
}

func TestSaramaDriver_RunUnconfigured(t *testing.T) {
	d := &SaramaDriver{}
	require.Error(t, d.Run(context.Background(), nil))
	require.NoError(t, d.Close())
}

func TestLoadConfig_FileEnvAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kafka.yml")
	require.NoError(t, os.WriteFile(path, []byte(`schema_version: v1
brokers: [localhost:9092]
topics: [metrics]
`), 0o644))
	t.Setenv("TRANSPOSER_KAFKA__GROUP_ID", "pivots")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, []string{"metrics"}, cfg.Topics)
	assert.Equal(t, "pivots", cfg.GroupID)
	assert.Equal(t, "newest", cfg.StartFrom)
	assert.Equal(t, 5*time.Second, cfg.Checkpoint.CommitInt)
}

func TestLoadConfig_RejectsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kafka.yml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: v3\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestNewAdapter(t *testing.T) {
	a, err := NewAdapter("sarama")
	require.NoError(t, err)
	assert.IsType(t, &SaramaDriver{}, a)

	_, err = NewAdapter("confluent")
	require.Error(t, err)
}
