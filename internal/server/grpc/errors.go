package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeOf maps a domain error to its status code.
func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrRequiredArgument), errors.Is(err, common.ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrPreconditionFailed):
		return codes.Aborted
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return codes.Unauthenticated
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// toStatus converts err into a status error. Internal failures are logged
// and their details are not sent to the caller.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "internal error", "error", err.Error(), "request_id", requestIDFromContext(ctx))
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
