package context

import (
	"context"
	"errors"

	"github.com/bartventer/gorm-multitenancy/middleware/nethttp/v8"
	"github.com/google/uuid"

	"github.com/agenthub/hub/internal/constants"
	"github.com/agenthub/hub/internal/errs"
	"github.com/agenthub/hub/internal/model"
)

var (
	ErrExtractTenantID  = errors.New("could not extract tenant ID from context")
	ErrGetRequestID     = errors.New("no requestID found in context")
	ErrExtractPrincipal = errors.New("could not extract principal from context")
)

type Opt func(ctx context.Context) context.Context

//nolint:fatcontext
func New(ctx context.Context, opts ...Opt) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, opt := range opts {
		ctx = opt(ctx)
	}

	return ctx
}

func ExtractTenantID(ctx context.Context) (string, error) {
	tenantID, ok := ctx.Value(nethttp.TenantKey).(string)
	if !ok || tenantID == "" {
		return "", errs.Wrap(ErrExtractTenantID, nethttp.ErrTenantInvalid)
	}

	return tenantID, nil
}

func CreateTenantContext(ctx context.Context, tenantID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, nethttp.TenantKey, tenantID)
}

func WithTenant(tenantID string) Opt {
	return func(ctx context.Context) context.Context {
		return CreateTenantContext(ctx, tenantID)
	}
}

type key string

const requestID = key("requestID")

func InjectRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestID, uuid.NewString())
}

func GetRequestID(ctx context.Context) (string, error) {
	requestID, ok := ctx.Value(requestID).(string)
	if !ok || requestID == "" {
		return "", ErrGetRequestID
	}

	return requestID, nil
}

func InjectPrincipal(ctx context.Context, principal *model.Principal) context.Context {
	return context.WithValue(ctx, constants.PrincipalKey, principal)
}

func WithPrincipal(principal *model.Principal) Opt {
	return func(ctx context.Context) context.Context {
		return InjectPrincipal(ctx, principal)
	}
}

func ExtractPrincipal(ctx context.Context) (*model.Principal, error) {
	principal, ok := ctx.Value(constants.PrincipalKey).(*model.Principal)
	if !ok || principal == nil {
		return nil, ErrExtractPrincipal
	}

	return principal, nil
}
