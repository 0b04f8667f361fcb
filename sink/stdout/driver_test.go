package stdout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transposer/frame"
	"transposer/sink"
)

func TestPush_WritesOneLinePerFrame(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Config{})

	require.NoError(t, s.Push(&frame.Frame{Value: []byte(`{"a":{}}` + "\n")}))
	require.NoError(t, s.Push(&frame.Frame{Value: []byte(`{}`)}))
	assert.Equal(t, "{\"a\":{}}\n{}\n", buf.String())
}

func TestPush_Counter(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Config{PrintCounter: true})

	require.NoError(t, s.Push(&frame.Frame{Topic: "in", Partition: 2, Offset: 9, Value: []byte("x")}))
	assert.Equal(t, "[sink 000001] in[2]@9\nx\n", buf.String())
}

func TestRegistry(t *testing.T) {
	a, err := sink.NewAdapter("stdout")
	require.NoError(t, err)
	require.NoError(t, a.Configure(Config{PrintCounter: true}))
	require.Error(t, a.Configure(42))

	_, err = sink.NewAdapter("s3")
	require.Error(t, err)
}
