package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/pkg/jwtauth"
)

const (
	msgMissingToken = "falta el token de autenticación"
	msgInvalidToken = "token inválido o caducado"
)

type contextKey struct{}

// TokenParser проверяет подпись и срок действия токена
type TokenParser interface {
	Parse(token string) (*jwtauth.Claims, error)
}

// RevocationChecker проверяет, не отозван ли токен (logout)
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Logger interface {
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// AdminAuth пропускает только запросы с валидным и не отозванным Bearer токеном.
// Claims кладутся в контекст запроса, достать их можно через AdminFromContext.
func AdminAuth(parser TokenParser, revocations RevocationChecker, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			revoked, err := revocations.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("%s %s - Failed to check token revocation: jti=%s, error=%v", r.Method, r.URL.Path, claims.ID, err)
				handlers.RespondInternalError(w)
				return
			}
			if revoked {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), claims)))
		})
	}
}

// WithAdmin кладет claims администратора в контекст
func WithAdmin(ctx context.Context, claims *jwtauth.Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// AdminFromContext достает claims администратора из контекста
func AdminFromContext(ctx context.Context) (*jwtauth.Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*jwtauth.Claims)
	return claims, ok && claims != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
