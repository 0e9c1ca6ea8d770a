package server

import (
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tobi-adeyemi/extractflow/internal/common"
)

// toStatusError maps domain errors onto gRPC codes. AppError codes surface in
// the message so clients can distinguish, say, NOT_READY from NOT_CANCELLABLE
// without parsing prose.
func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *common.AppError
	msg := err.Error()
	if errors.As(err, &appErr) {
		msg = appErr.Code + ": " + appErr.Message
	}

	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, msg)
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, msg)
	case errors.Is(err, common.ErrInsufficientCredits):
		return status.Error(codes.FailedPrecondition, "INSUFFICIENT_CREDITS: "+common.ErrInsufficientCredits.Error())
	case errors.Is(err, common.ErrExpired):
		return status.Error(codes.FailedPrecondition, "EXPIRED: session has expired and its artifacts were reclaimed")
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.FailedPrecondition, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}

// parseUUID wraps uuid parsing with a field-specific InvalidArgument.
func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
