package middleware

import (
	"errors"
	"strings"

	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/config"
	"github.com/agenthub/hub/internal/constants"
	"github.com/agenthub/hub/internal/log"
	"github.com/agenthub/hub/internal/model"
	hubcontext "github.com/agenthub/hub/utils/context"
)

var (
	ErrMissingAuthorization = errors.New("missing bearer token")
	ErrParsingToken         = errors.New("could not parse bearer token")
)

// hubClaims is the token payload issued for hub users.
type hubClaims struct {
	jwt.RegisteredClaims

	TenantID string `json:"tenant"`
	Role     string `json:"role"`
}

// InjectPrincipal authenticates the request's bearer token and places the
// resulting principal into the context. The principal's role is a claim
// from authentication time only; the authorization gate re-checks the live
// user record before trusting it.
func InjectPrincipal(cfg config.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := bearerToken(r)
			if err != nil {
				write.ErrorResponse(ctx, w, apierrors.UnauthorizedErrorMessage("Authentication required"))
				return
			}

			principal, err := parsePrincipal(token, cfg)
			if err != nil {
				log.Warn(ctx, "rejecting request with invalid token", log.ErrorAttr(err))
				write.ErrorResponse(ctx, w, apierrors.UnauthorizedErrorMessage("Invalid or expired token"))

				return
			}

			next.ServeHTTP(w, r.WithContext(hubcontext.InjectPrincipal(ctx, principal)))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(constants.AuthorizationHeader)
	if !strings.HasPrefix(header, constants.BearerPrefix) {
		return "", ErrMissingAuthorization
	}

	token := strings.TrimPrefix(header, constants.BearerPrefix)
	if token == "" {
		return "", ErrMissingAuthorization
	}

	return token, nil
}

func parsePrincipal(token string, cfg config.Auth) (*model.Principal, error) {
	claims := &hubClaims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return []byte(cfg.SigningSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Join(ErrParsingToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Join(ErrParsingToken, err)
	}

	principal := &model.Principal{
		UserID:   userID,
		TenantID: claims.TenantID,
		Role:     model.Role(claims.Role),
		Active:   true,
	}

	err = principal.Validate()
	if err != nil {
		return nil, errors.Join(ErrParsingToken, err)
	}

	return principal, nil
}
