package authorization

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/casbin/casbin"
	"github.com/cristalhq/jwt/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	errs "github.com/fahim-khandakar/explore-elite-server-side/errors"
)

type identityKey struct{}

type Authorizer struct {
	signer   jwt.Signer
	verifier jwt.Verifier
	users    domain.UserStore
	enforcer *casbin.Enforcer
	logger   *logrus.Logger
}

func NewAuthorizer(secret []byte, users domain.UserStore, logger *logrus.Logger, modelPath, policyPath string) (*Authorizer, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, secret)
	if err != nil {
		return nil, err
	}

	verifier, err := jwt.NewVerifierHS(jwt.HS256, secret)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcerSafe(modelPath, policyPath)
	if err != nil {
		return nil, err
	}

	return &Authorizer{
		signer:   signer,
		verifier: verifier,
		users:    users,
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

// VerifyToken gates a protected route. The decoded identity is attached to
// the request context and is the only identity downstream checks may trust.
func (auth *Authorizer) VerifyToken(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		bearer := req.Header.Get("Authorization")
		if bearer == "" {
			auth.unauthorized(writer)
			return
		}

		bearerToken := strings.Split(bearer, " ")
		if len(bearerToken) != 2 {
			auth.unauthorized(writer)
			return
		}

		claims, err := auth.parseClaims(bearerToken[1])
		if err != nil {
			auth.logger.WithError(err).Warn("Rejected bearer token")
			auth.unauthorized(writer)
			return
		}

		var identity domain.Identity
		if err := mapstructure.Decode(claims, &identity); err != nil {
			auth.logger.WithError(err).Warn("Malformed token claims")
			auth.unauthorized(writer)
			return
		}

		ctx := context.WithValue(req.Context(), identityKey{}, identity)
		next(writer, req.WithContext(ctx))
	}
}

// RequireAdmin runs after VerifyToken. The caller's role comes from the
// stored user document, never from the token claims, so a forged role claim
// buys nothing.
func (auth *Authorizer) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		identity, ok := IdentityFromContext(req.Context())
		if !ok {
			auth.unauthorized(writer)
			return
		}

		user, err := auth.users.GetByEmail(req.Context(), identity.Email)
		if err != nil {
			auth.logger.WithError(err).Error("Role lookup failed")
			writer.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(writer).Encode(map[string]string{"message": errs.DatabaseError})
			return
		}
		if user == nil {
			auth.forbidden(writer)
			return
		}

		role := user.Role
		if role == "" {
			role = domain.Tourist
		}

		allowed, err := auth.enforcer.EnforceSafe(string(role), req.URL.Path, req.Method)
		if err != nil {
			auth.logger.WithError(err).Error("Error enforcing authorization policy")
			auth.forbidden(writer)
			return
		}
		if !allowed {
			auth.logger.WithField("email", identity.Email).Warn("Forbidden access attempt")
			auth.forbidden(writer)
			return
		}

		next(writer, req)
	}
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// ContextWithIdentity exists for composing guards out of band, mainly in
// tests that exercise handlers behind an already verified identity.
func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func (auth *Authorizer) unauthorized(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(writer).Encode(map[string]string{"message": errs.UnauthorizedAccess})
}

func (auth *Authorizer) forbidden(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusForbidden)
	json.NewEncoder(writer).Encode(map[string]string{"message": errs.ForbiddenAccess})
}
