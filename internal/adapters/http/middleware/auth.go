package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
	"github.com/MiguelCav2025/sitecav/internal/platform/logging"
)

// tokenLeeway tolerates clock skew between this service and the token issuer.
const tokenLeeway = 30 * time.Second

// AdminClaims are the claims of an admin access token issued by the hosted
// backend's auth service.
type AdminClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type adminKey struct{}

// AdminFromContext returns the verified claims stored by AdminAuth.
func AdminFromContext(ctx context.Context) (*AdminClaims, bool) {
	claims, ok := ctx.Value(adminKey{}).(*AdminClaims)
	return claims, ok
}

// AdminAuth returns middleware that requires an HS256 bearer token signed
// with secret. Tokens must carry an expiry and, when set, match issuer and
// audience. Rejected requests get a 401 problem response; the verified
// claims are stored in the request context and the subject is added to the
// request logger. Backend calls made while serving the request carry the
// admin's token instead of the anon key.
func AdminAuth(secret []byte, issuer, audience string) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(tokenLeeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	parser := jwt.NewParser(opts...)
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w, r, "missing bearer token")
				return
			}

			claims := &AdminClaims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				logging.FromContext(ctx).WarnContext(ctx, "admin token rejected",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				unauthorized(w, r, "invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, adminKey{}, claims)
			ctx = httpclient.WithBearerToken(ctx, raw)
			ctx = logging.With(ctx, slog.String("admin", claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	dto.WriteProblem(w, r, http.StatusUnauthorized, detail)
}
