package log

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	slogctx "github.com/veqryn/slog-context"

	"github.com/agenthub/hub/internal/constants"
	hubcontext "github.com/agenthub/hub/utils/context"
)

// Setup installs the process-wide logger. All records flow through the
// slog-context handler so attributes injected into a request context are
// carried on every line logged under it.
func Setup(level constants.LogLevel) {
	var l slog.Level

	switch level {
	case constants.LogLevelDebug:
		l = slog.LevelDebug
	case constants.LogLevelWarn:
		l = slog.LevelWarn
	case constants.LogLevelError:
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slogctx.NewHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}),
		nil,
	)

	slog.SetDefault(slog.New(handler).With(slog.String("service", constants.APIName)))
}

func InjectRequest(ctx context.Context, r *http.Request) context.Context {
	requestID, _ := hubcontext.GetRequestID(ctx)
	tenant, _ := hubcontext.ExtractTenantID(ctx)

	return slogctx.With(ctx,
		slog.String("requestId", requestID),
		slog.String("tenantId", tenant),
		slog.Group("requestData",
			slog.String("method", r.Method),
			slog.String("host", r.Host),
			slog.String("path", r.URL.Path),
		),
	)
}

func ErrorAttr(err error) slog.Attr {
	return slog.Attr{
		Key:   slogctx.ErrKey,
		Value: slog.StringValue(err.Error()),
	}
}

func Debug(ctx context.Context, msg string, args ...slog.Attr) {
	slogctx.LogAttrs(ctx, slog.LevelDebug, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...slog.Attr) {
	slogctx.LogAttrs(ctx, slog.LevelWarn, msg, args...)
}

func Info(ctx context.Context, msg string, args ...slog.Attr) {
	slogctx.LogAttrs(ctx, slog.LevelInfo, msg, args...)
}

func Error(ctx context.Context, msg string, err error, args ...slog.Attr) {
	args = append(args, slogctx.Err(err))

	slogctx.LogAttrs(ctx, slog.LevelError, msg, args...)
}
