package server

import (
	"context"
	"crypto/subtle"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const adminTokenHeader = "x-admin-token"

// AdminAuthInterceptor gates every AdminService method behind a shared token
// carried in request metadata. An empty configured token disables the admin
// API entirely rather than leaving it open.
func AdminAuthInterceptor(token string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.Contains(info.FullMethod, "AdminService") {
			return handler(ctx, req)
		}
		if token == "" {
			return nil, status.Error(codes.PermissionDenied, "admin API is disabled")
		}
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing request metadata")
		}
		values := md.Get(adminTokenHeader)
		if len(values) == 0 || subtle.ConstantTimeCompare([]byte(values[0]), []byte(token)) != 1 {
			return nil, status.Error(codes.PermissionDenied, "invalid admin token")
		}
		return handler(ctx, req)
	}
}
