package server

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func callThrough(t *testing.T, token string, ctx context.Context, method string) error {
	t.Helper()
	interceptor := AdminAuthInterceptor(token)
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method},
		func(context.Context, any) (any, error) { return "ok", nil })
	return err
}

func TestAdminAuthInterceptor(t *testing.T) {
	const adminMethod = "/extractflow.v1.AdminService/RunCleanup"
	const userMethod = "/extractflow.v1.SessionService/ListSessions"

	withToken := func(v string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-admin-token", v))
	}

	t.Run("non-admin methods pass untouched", func(t *testing.T) {
		if err := callThrough(t, "secret", context.Background(), userMethod); err != nil {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("valid token passes", func(t *testing.T) {
		if err := callThrough(t, "secret", withToken("secret"), adminMethod); err != nil {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("wrong token denied", func(t *testing.T) {
		err := callThrough(t, "secret", withToken("nope"), adminMethod)
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("code = %v, want PermissionDenied", status.Code(err))
		}
	})

	t.Run("missing metadata denied", func(t *testing.T) {
		err := callThrough(t, "secret", context.Background(), adminMethod)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
		}
	})

	t.Run("empty configured token disables admin API", func(t *testing.T) {
		err := callThrough(t, "", withToken(""), adminMethod)
		if status.Code(err) != codes.PermissionDenied {
			t.Fatalf("code = %v, want PermissionDenied", status.Code(err))
		}
	})
}
