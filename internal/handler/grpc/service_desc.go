// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ContextServiceServer is the server API of the ucip.ContextService.
//
// Requests and responses are dynamic messages of the UCIP schema
// (see codec.File), so no generated code is needed.
type ContextServiceServer interface {
	// GetContext takes a GetContextRequest and returns a UCIP message.
	GetContext(context.Context, *dynamicpb.Message) (*dynamicpb.Message, error)
	// UpdateContext takes an UpdateContextRequest and returns an
	// UpdateContextResponse.
	UpdateContext(context.Context, *dynamicpb.Message) (*dynamicpb.Message, error)
}

// RegisterContextServiceServer registers srv on s under ucip.ContextService.
func RegisterContextServiceServer(s grpc.ServiceRegistrar, srv ContextServiceServer) {
	s.RegisterService(&ContextServiceDesc, srv)
}

// Full method names, as seen by interceptors.
const (
	GetContextFullMethod    = "/" + codec.ContextServiceName + "/" + codec.GetContextMethod
	UpdateContextFullMethod = "/" + codec.ContextServiceName + "/" + codec.UpdateContextMethod
)

// ContextServiceDesc is the grpc.ServiceDesc for ucip.ContextService.
var ContextServiceDesc = grpc.ServiceDesc{
	ServiceName: codec.ContextServiceName,
	HandlerType: (*ContextServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: codec.GetContextMethod,
			Handler:    getContextHandler,
		},
		{
			MethodName: codec.UpdateContextMethod,
			Handler:    updateContextHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/ucip.proto",
}

func getContextHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := dynamicpb.NewMessage(codec.GetContextRequestDescriptor)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextServiceServer).GetContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetContextFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ContextServiceServer).GetContext(ctx, req.(*dynamicpb.Message))
	}
	return interceptor(ctx, in, info, handler)
}

func updateContextHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := dynamicpb.NewMessage(codec.UpdateContextRequestDescriptor)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContextServiceServer).UpdateContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UpdateContextFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ContextServiceServer).UpdateContext(ctx, req.(*dynamicpb.Message))
	}
	return interceptor(ctx, in, info, handler)
}
