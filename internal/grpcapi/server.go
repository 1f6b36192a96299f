package grpcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/service"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/validator"
)

// ServiceName полное имя gRPC-сервиса оценки
const ServiceName = "estimator.v1.Estimator"

const (
	generateMethod = "/" + ServiceName + "/Generate"
	explainMethod  = "/" + ServiceName + "/Explain"
)

// EstimatorServer принимает и возвращает google.protobuf.Struct
// с той же JSON-структурой, что и HTTP API.
type EstimatorServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Explain(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var estimatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EstimatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: unaryHandler(generateMethod, EstimatorServer.Generate)},
		{MethodName: "Explain", Handler: unaryHandler(explainMethod, EstimatorServer.Explain)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "estimator/v1/estimator.proto",
}

type estimatorMethod func(EstimatorServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call estimatorMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EstimatorServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(EstimatorServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type Server struct {
	estimator *service.Estimator
}

func NewServer(estimator *service.Estimator) *Server {
	return &Server{estimator: estimator}
}

func (s *Server) Generate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeRequest(in)
	if err != nil {
		return nil, err
	}
	return encodeResponse(s.estimator.Generate(req))
}

func (s *Server) Explain(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeRequest(in)
	if err != nil {
		return nil, err
	}
	return encodeResponse(s.estimator.Explain(req))
}

// Register регистрирует сервис оценки, стандартный health-сервис и reflection
func Register(gs *grpc.Server, estimator *service.Estimator) *health.Server {
	gs.RegisterService(&estimatorServiceDesc, NewServer(estimator))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)
	return hs
}

func decodeRequest(in *structpb.Struct) (models.GenerateRequest, error) {
	body, err := json.Marshal(in.AsMap())
	if err != nil {
		return models.GenerateRequest{}, status.Errorf(codes.Internal, "error marshaling request: %v", err)
	}

	req, errs := validator.ValidateGenerateRequest(body)
	if len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, fmt.Sprintf("%s: %s", strings.Join(e.Loc, "."), e.Msg))
		}
		return models.GenerateRequest{}, status.Error(codes.InvalidArgument, strings.Join(msgs, "; "))
	}
	return req, nil
}

func encodeResponse(resp any) (*structpb.Struct, error) {
	blob, err := json.Marshal(resp)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "error marshaling response: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(blob, &m); err != nil {
		return nil, status.Errorf(codes.Internal, "error unmarshaling response: %v", err)
	}

	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "error building response: %v", err)
	}
	return out, nil
}
