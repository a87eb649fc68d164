package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

const auth0BearerPrefix = "auth0|"

var (
	errInvalidJWT      = errors.New("invalid JWT token")
	errInvalidAPIToken = errors.New("invalid API token")
	errInactiveToken   = errors.New("API token is revoked or expired")
)

// AuthResult identifies the dreamer behind a request.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator inspects the Authorization header of a request.
// A nil result with a nil error means the header is not in this validator's
// scheme and the next validator should be tried.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware tries each validator in order. The first one that claims
// the request decides it; requests no validator claims pass through
// anonymously so public endpoints keep working.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := authenticate(r, validators)
			switch {
			case err != nil:
				domain.LoggerFromContext(r.Context()).WarnContext(r.Context(),
					"rejecting journal request credentials", "path", r.URL.Path, "error", err)
				writeUnauthorized(w, err.Error())
			case result == nil:
				next.ServeHTTP(w, r)
			default:
				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func authenticate(r *http.Request, validators []AuthValidator) (*AuthResult, error) {
	for _, validate := range validators {
		result, err := validate(r)
		if result != nil || err != nil {
			return result, err
		}
	}
	return nil, nil
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// bearerToken returns the bearer credential if it starts with prefix.
func bearerToken(r *http.Request, prefix string) (string, bool) {
	credential, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || !strings.HasPrefix(credential, prefix) {
		return "", false
	}
	return credential, true
}

// NewAuth0Validator accepts "Bearer auth0|<jwt>" headers carrying an RS256
// token issued by the tenant for the given audience.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("parsing auth0 issuer for domain [%s]: %w", auth0Domain, err)
	}

	keys := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		keys.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth0 JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		credential, ok := bearerToken(r, auth0BearerPrefix)
		if !ok {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), strings.TrimPrefix(credential, auth0BearerPrefix))
		if err != nil {
			return nil, errInvalidJWT
		}
		claims, ok := token.(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			return nil, errInvalidJWT
		}

		return &AuthResult{UserID: claims.RegisteredClaims.Subject, Method: domain.AuthMethodAuth0}, nil
	}, nil
}

type tokenUse struct {
	tokenID string
	usedAt  time.Time
}

// lastUsedTracker records token use in the background. Uses arriving while
// the queue is full are dropped, as are queued uses on shutdown.
type lastUsedTracker struct {
	uses chan tokenUse
}

func newLastUsedTracker(ctx context.Context, updater datasources.APITokenLastUsedUpdater) *lastUsedTracker {
	t := &lastUsedTracker{uses: make(chan tokenUse, 100)}
	bg := context.WithoutCancel(ctx)
	go func() {
		for use := range t.uses {
			if err := updater.UpdateAPITokenLastUsed(bg, use.tokenID, use.usedAt); err != nil {
				domain.LoggerFromContext(bg).WarnContext(bg,
					"failed to record API token use", "token", use.tokenID, "error", err)
			}
		}
	}()
	return t
}

func (t *lastUsedTracker) record(use tokenUse) {
	select {
	case t.uses <- use:
	default:
	}
}

// NewAPITokenValidator accepts personal API tokens and records when each
// was last used. A nil now uses time.Now.
func NewAPITokenValidator(
	ctx context.Context,
	tokenGetter datasources.APITokenByHashGetter,
	lastUsedUpdater datasources.APITokenLastUsedUpdater,
	now func() time.Time,
) AuthValidator {
	if now == nil {
		now = time.Now
	}
	tracker := newLastUsedTracker(ctx, lastUsedUpdater)

	return func(r *http.Request) (*AuthResult, error) {
		credential, ok := bearerToken(r, command.APITokenPrefix)
		if !ok {
			return nil, nil
		}

		token, err := tokenGetter.GetAPITokenByHash(r.Context(), command.HashAPIToken(credential))
		if err != nil {
			return nil, errInvalidAPIToken
		}

		usedAt := now().UTC()
		if !token.IsActiveAt(usedAt) {
			return nil, errInactiveToken
		}
		tracker.record(tokenUse{tokenID: token.ID, usedAt: usedAt})

		return &AuthResult{UserID: token.UserID, Method: domain.AuthMethodAPIToken}, nil
	}
}
