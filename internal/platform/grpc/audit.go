package grpc

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AuditUnaryInterceptor logs every unary call with its status code and, when
// a span is recording, the trace and span ids. Handler results pass through
// unchanged.
func AuditUnaryInterceptor(logf func(string, ...any)) gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if logf == nil {
			return resp, err
		}

		code := codes.OK
		if err != nil {
			if st, ok := status.FromError(err); ok {
				code = st.Code()
			} else {
				code = codes.Unknown
			}
		}

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			logf("rpc %s code=%s trace_id=%s span_id=%s", info.FullMethod, code, sc.TraceID(), sc.SpanID())
		} else {
			logf("rpc %s code=%s", info.FullMethod, code)
		}
		return resp, err
	}
}
