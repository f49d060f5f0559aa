package manager_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/repo/mock"
	hubcontext "github.com/agenthub/hub/utils/context"
)

func hubTenantContext(tenantID string) context.Context {
	return hubcontext.CreateTenantContext(context.Background(), tenantID)
}

func TestNewManager(t *testing.T) {
	r := mock.NewRepo()

	m := manager.New(r, &adminStore{r: r}, &recordingInvalidator{})
	require.NotNil(t, m)

	assert.NotNil(t, m.Tenant)
	assert.NotNil(t, m.User)
	assert.NotNil(t, m.Workshop)
	assert.NotNil(t, m.Library)
}
