package grpc

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse переводит ошибку приложения в gRPC-статус по её классу.
func GRPCErrorResponse(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	msg := e.ErrInternalServerError.Error()
	if cause := e.Cause(err); cause != nil {
		msg = cause.Error()
	}

	switch {
	case errors.Is(err, e.ErrNotFound):
		return status.Error(codes.NotFound, msg)
	case errors.Is(err, e.ErrValidation):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, e.ErrUnauthenticated), errors.Is(err, e.ErrAuthenticationFailed):
		return status.Error(codes.Unauthenticated, msg)
	case errors.Is(err, e.ErrForbidden):
		return status.Error(codes.PermissionDenied, msg)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, msg)
	}
}

// UnaryErrorInterceptor логирует ошибки обработчиков и отдаёт клиенту gRPC-статус.
func UnaryErrorInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			log.Warnf("gRPC %s failed: %v", info.FullMethod, err)
			return nil, GRPCErrorResponse(err)
		}

		return resp, nil
	}
}
