// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "vault.v1.VaultService"

	ListMethod   = "/" + ServiceName + "/List"
	CreateMethod = "/" + ServiceName + "/Create"
	UpdateMethod = "/" + ServiceName + "/Update"
	DeleteMethod = "/" + ServiceName + "/Delete"
)

// VaultServer is the server side of vault.v1.VaultService.
type VaultServer interface {
	List(context.Context, *ListRequest) (*ListResponse, error)
	Create(context.Context, *CreateRequest) (*models.VaultRecord, error)
	Update(context.Context, *UpdateRequest) (*models.VaultRecord, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
}

// RegisterVaultServer registers srv on s under ServiceName.
func RegisterVaultServer(s grpc.ServiceRegistrar, srv VaultServer) {
	s.RegisterService(&VaultServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(VaultServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(VaultServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(VaultServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var VaultServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VaultServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler(ListMethod, VaultServer.List)},
		{MethodName: "Create", Handler: unaryHandler(CreateMethod, VaultServer.Create)},
		{MethodName: "Update", Handler: unaryHandler(UpdateMethod, VaultServer.Update)},
		{MethodName: "Delete", Handler: unaryHandler(DeleteMethod, VaultServer.Delete)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vault/v1/vault.proto",
}

// VaultClient is the client side of vault.v1.VaultService.
type VaultClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultClient(cc grpc.ClientConnInterface) *VaultClient {
	return &VaultClient{cc: cc}
}

func (c *VaultClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, ListMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VaultClient) Create(ctx context.Context, in *CreateRequest, opts ...grpc.CallOption) (*models.VaultRecord, error) {
	out := new(models.VaultRecord)
	if err := c.invoke(ctx, CreateMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VaultClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*models.VaultRecord, error) {
	out := new(models.VaultRecord)
	if err := c.invoke(ctx, UpdateMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VaultClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	if err := c.invoke(ctx, DeleteMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VaultClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}
