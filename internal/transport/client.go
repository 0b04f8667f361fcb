package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Client struct {
	conn *grpc.ClientConn
	rpc  TransposerClient
}

// Dial connects to a Transposer service. Without options the connection is
// plaintext.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	if len(opts) == 0 {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	cc, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: cc, rpc: NewTransposerClient(cc)}, nil
}

// Transpose sends doc and returns the rendered table and its content type.
// A nil label keeps the server default; a pointer to "" suppresses it.
func (c *Client) Transpose(ctx context.Context, doc []byte, label *string, format string) ([]byte, string, error) {
	var kv []string
	if label != nil {
		kv = append(kv, MDLabel, *label)
	}
	if format != "" {
		kv = append(kv, MDFormat, format)
	}
	if len(kv) > 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, kv...)
	}

	var hdr metadata.MD
	out, err := c.rpc.Transpose(ctx, wrapperspb.Bytes(doc), grpc.Header(&hdr))
	if err != nil {
		return nil, "", err
	}
	var ct string
	if v := hdr.Get(MDContentType); len(v) > 0 {
		ct = v[0]
	}
	return out.GetValue(), ct, nil
}

func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
