// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/llm.proto

package llmv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	LLMService_Complete_FullMethodName          = "/linguaflow.llm.v1.LLMService/Complete"
	LLMService_RecognizeEntities_FullMethodName = "/linguaflow.llm.v1.LLMService/RecognizeEntities"
	LLMService_Embed_FullMethodName             = "/linguaflow.llm.v1.LLMService/Embed"
)

// LLMServiceClient is the client API for LLMService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// LLMService is the contract between the Go pipeline and the model sidecar.
// The sidecar owns the provider SDKs and API keys; the pipeline owns
// batching, rate limiting and persistence.
//
// Regenerate the Go stubs with:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       proto/llm.proto
type LLMServiceClient interface {
	// Complete runs one conversation and streams the reply back in chunks.
	Complete(ctx context.Context, in *CompleteRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[CompleteChunk], error)
	// RecognizeEntities extracts named entities used to seed terminology
	// identification. Optional; callers must tolerate UNIMPLEMENTED.
	RecognizeEntities(ctx context.Context, in *RecognizeEntitiesRequest, opts ...grpc.CallOption) (*RecognizeEntitiesResponse, error)
	// Embed returns one semantic vector per input text, in order.
	Embed(ctx context.Context, in *EmbedRequest, opts ...grpc.CallOption) (*EmbedResponse, error)
}

type lLMServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLLMServiceClient(cc grpc.ClientConnInterface) LLMServiceClient {
	return &lLMServiceClient{cc}
}

func (c *lLMServiceClient) Complete(ctx context.Context, in *CompleteRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[CompleteChunk], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &LLMService_ServiceDesc.Streams[0], LLMService_Complete_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[CompleteRequest, CompleteChunk]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type LLMService_CompleteClient = grpc.ServerStreamingClient[CompleteChunk]

func (c *lLMServiceClient) RecognizeEntities(ctx context.Context, in *RecognizeEntitiesRequest, opts ...grpc.CallOption) (*RecognizeEntitiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecognizeEntitiesResponse)
	err := c.cc.Invoke(ctx, LLMService_RecognizeEntities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lLMServiceClient) Embed(ctx context.Context, in *EmbedRequest, opts ...grpc.CallOption) (*EmbedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EmbedResponse)
	err := c.cc.Invoke(ctx, LLMService_Embed_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LLMServiceServer is the server API for LLMService service.
// All implementations must embed UnimplementedLLMServiceServer
// for forward compatibility.
//
// LLMService is the contract between the Go pipeline and the model sidecar.
// The sidecar owns the provider SDKs and API keys; the pipeline owns
// batching, rate limiting and persistence.
//
// Regenerate the Go stubs with:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       proto/llm.proto
type LLMServiceServer interface {
	// Complete runs one conversation and streams the reply back in chunks.
	Complete(*CompleteRequest, grpc.ServerStreamingServer[CompleteChunk]) error
	// RecognizeEntities extracts named entities used to seed terminology
	// identification. Optional; callers must tolerate UNIMPLEMENTED.
	RecognizeEntities(context.Context, *RecognizeEntitiesRequest) (*RecognizeEntitiesResponse, error)
	// Embed returns one semantic vector per input text, in order.
	Embed(context.Context, *EmbedRequest) (*EmbedResponse, error)
	mustEmbedUnimplementedLLMServiceServer()
}

// UnimplementedLLMServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLLMServiceServer struct{}

func (UnimplementedLLMServiceServer) Complete(*CompleteRequest, grpc.ServerStreamingServer[CompleteChunk]) error {
	return status.Errorf(codes.Unimplemented, "method Complete not implemented")
}
func (UnimplementedLLMServiceServer) RecognizeEntities(context.Context, *RecognizeEntitiesRequest) (*RecognizeEntitiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecognizeEntities not implemented")
}
func (UnimplementedLLMServiceServer) Embed(context.Context, *EmbedRequest) (*EmbedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Embed not implemented")
}
func (UnimplementedLLMServiceServer) mustEmbedUnimplementedLLMServiceServer() {}
func (UnimplementedLLMServiceServer) testEmbeddedByValue()                    {}

// UnsafeLLMServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LLMServiceServer will
// result in compilation errors.
type UnsafeLLMServiceServer interface {
	mustEmbedUnimplementedLLMServiceServer()
}

func RegisterLLMServiceServer(s grpc.ServiceRegistrar, srv LLMServiceServer) {
	// If the following call pancis, it indicates UnimplementedLLMServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LLMService_ServiceDesc, srv)
}

func _LLMService_Complete_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(CompleteRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(LLMServiceServer).Complete(m, &grpc.GenericServerStream[CompleteRequest, CompleteChunk]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type LLMService_CompleteServer = grpc.ServerStreamingServer[CompleteChunk]

func _LLMService_RecognizeEntities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecognizeEntitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LLMServiceServer).RecognizeEntities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LLMService_RecognizeEntities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LLMServiceServer).RecognizeEntities(ctx, req.(*RecognizeEntitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LLMService_Embed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmbedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LLMServiceServer).Embed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LLMService_Embed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LLMServiceServer).Embed(ctx, req.(*EmbedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LLMService_ServiceDesc is the grpc.ServiceDesc for LLMService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LLMService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "linguaflow.llm.v1.LLMService",
	HandlerType: (*LLMServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecognizeEntities",
			Handler:    _LLMService_RecognizeEntities_Handler,
		},
		{
			MethodName: "Embed",
			Handler:    _LLMService_Embed_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Complete",
			Handler:       _LLMService_Complete_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proto/llm.proto",
}
