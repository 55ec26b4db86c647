package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/dmitrijs2005/fuelcost/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const callKey ctxKey = "call"

const (
	// RequestIDHeader is sent back on every call.
	RequestIDHeader     = "x-request-id"
	AuthorizationHeader = "authorization"
	bearerPrefix        = "Bearer "
)

// call is filled in by the interceptor chain as a request passes through it.
type call struct {
	requestID string
	subject   string
}

func callFromContext(ctx context.Context) *call {
	c, _ := ctx.Value(callKey).(*call)
	return c
}

func requestIDFromContext(ctx context.Context) string {
	if c := callFromContext(ctx); c != nil {
		return c.requestID
	}
	return ""
}

// subjectFromContext returns the authenticated caller, if any.
func subjectFromContext(ctx context.Context) (string, bool) {
	if c := callFromContext(ctx); c != nil && c.subject != "" {
		return c.subject, true
	}
	return "", false
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	c := &call{requestID: uuid.NewString()}
	ctx = context.WithValue(ctx, callKey, c)
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, c.requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{
		"request_id", c.requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start).String(),
	}
	if sub, ok := subjectFromContext(ctx); ok {
		args = append(args, "subject", sub)
	}
	s.logger.Info(ctx, "gRPC call", args...)
	return resp, err
}

// accessTokenInterceptor requires "authorization: Bearer <token>" on every
// call when a secret key is configured.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if len(s.jwtSecret) == 0 {
		return handler(ctx, req)
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(AuthorizationHeader); len(values) > 0 {
			header = values[0]
		}
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return nil, s.toStatus(ctx, common.ErrUnauthenticated)
	}

	subject, err := auth.SubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	c := callFromContext(ctx)
	if c == nil {
		c = &call{}
		ctx = context.WithValue(ctx, callKey, c)
	}
	c.subject = subject
	return handler(ctx, req)
}
