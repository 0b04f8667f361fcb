package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKafkaSource(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	cfg, err := LoadKafkaSource(write("ok.yml", "brokers: [b1:9092]\ntopics: [metrics]\nthrottle: { capacity: 10 }\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"metrics"}, cfg.Topics)
	assert.Equal(t, int64(10), cfg.Throttle.Refill)

	_, err = LoadKafkaSource(write("nobrokers.yml", "topics: [metrics]\n"))
	assert.ErrorContains(t, err, "no brokers")

	_, err = LoadKafkaSource(write("notopics.yml", "brokers: [b1:9092]\n"))
	assert.ErrorContains(t, err, "no topics")
}
