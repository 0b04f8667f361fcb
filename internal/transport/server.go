package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"transposer/format"
	"transposer/internal/logging"
	"transposer/internal/transform"
)

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

func StartServer(port int, svc *transform.Service) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	return NewServer(lis, svc), nil
}

// NewServer registers the Transposer and health services on lis.
func NewServer(lis net.Listener, svc *transform.Service) *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
		lis:    lis,
	}
	RegisterTransposerServer(s.grpc, &transposer{svc: svc})
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return s
}

func (s *Server) Addr() net.Addr { return s.lis.Addr() }

func (s *Server) Serve() error {
	return s.grpc.Serve(s.lis)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

type transposer struct {
	svc *transform.Service
}

func (t *transposer) Transpose(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	var req transform.Request
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(MDLabel); len(v) > 0 {
			req.Label = &v[0]
		}
		if v := md.Get(MDFormat); len(v) > 0 {
			req.Format = v[0]
		}
	}

	var out bytes.Buffer
	res, err := t.svc.Transform(bytes.NewReader(in.GetValue()), &out, req)
	if err != nil {
		logging.For("transport").Debug("transpose rejected", "err", err)
		return nil, toStatus(err)
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(MDContentType, res.ContentType))
	logging.For("transport").Debug("transpose served", "rows", res.Rows, "bytes", out.Len(), "content_type", res.ContentType)
	return wrapperspb.Bytes(out.Bytes()), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, transform.ErrBadDocument), errors.Is(err, format.ErrUnknownFormat):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
