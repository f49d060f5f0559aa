package context_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/model"
	hubcontext "github.com/agenthub/hub/utils/context"
)

func TestNewAppliesOptions(t *testing.T) {
	principal := &model.Principal{
		UserID:   uuid.New(),
		TenantID: uuid.NewString(),
		Role:     model.RoleInstructor,
		Active:   true,
	}

	ctx := hubcontext.New(nil,
		hubcontext.WithTenant(principal.TenantID),
		hubcontext.WithPrincipal(principal),
	)

	tenantID, err := hubcontext.ExtractTenantID(ctx)
	require.NoError(t, err)
	assert.Equal(t, principal.TenantID, tenantID)

	got, err := hubcontext.ExtractPrincipal(ctx)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestExtractFromEmptyContext(t *testing.T) {
	ctx := context.Background()

	_, err := hubcontext.ExtractTenantID(ctx)
	assert.ErrorIs(t, err, hubcontext.ErrExtractTenantID)

	_, err = hubcontext.ExtractPrincipal(ctx)
	assert.ErrorIs(t, err, hubcontext.ErrExtractPrincipal)

	_, err = hubcontext.GetRequestID(ctx)
	assert.ErrorIs(t, err, hubcontext.ErrGetRequestID)
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := hubcontext.InjectRequestID(context.Background())

	id, err := hubcontext.GetRequestID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
