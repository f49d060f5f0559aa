package apierrors

import (
	"context"
	"slices"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/errs"
)

var APIErrorMapper = errs.NewMapper(toExposed(slices.Concat(
	tenants,
	users,
	content,
	authz,
	defaultCatalog,
)), toExposed(highPrio))

// TransformToAPIError maps an internal error chain onto the error
// message surfaced at the API boundary.
func TransformToAPIError(ctx context.Context, err error) hubapi.ErrorMessage {
	return hubapi.ErrorMessage(APIErrorMapper.Transform(ctx, err))
}

func toExposed(entries []APIError) []errs.ExposedErrors[Exposed] {
	result := make([]errs.ExposedErrors[Exposed], 0, len(entries))

	for _, entry := range entries {
		result = append(result, errs.ExposedErrors[Exposed]{
			InternalErrorChain: entry.Errors,
			ExposedError:       Exposed{Error: entry.ExposedError},
			ContextGetter:      entry.ContextGetter,
		})
	}

	return result
}
