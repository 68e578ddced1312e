package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const callerKey = "caller"

// Claims выпускает внешний сервис авторизации. Старые токены
// несут только userId, новые используют стандартный sub.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) caller() domain.Caller {
	id := c.UserID
	if id == "" {
		id = c.Subject
	}

	role := domain.Role(c.Role)
	switch role {
	case domain.RoleAdmin, domain.RoleProvider:
	default:
		role = domain.RoleUser
	}

	return domain.Caller{ID: id, Role: role}
}

type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

func (v *TokenVerifier) Verify(token string) (domain.Caller, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Caller{}, err
	}
	if !t.Valid {
		return domain.Caller{}, errors.New("invalid token")
	}

	caller := claims.caller()
	if caller.ID == "" {
		return domain.Caller{}, errors.New("token without subject")
	}

	return caller, nil
}

func Auth(verifier *TokenVerifier, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token", "reason": "unauthorized"},
			)
			return
		}

		caller, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.DebugLevel, "token rejected",
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token", "reason": "unauthorized"},
			)
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *ginext.Context) {
		caller, ok := CallerFrom(c)
		if _, permitted := allowed[caller.Role]; !ok || !permitted {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "access denied", "reason": "access_denied"},
			)
			return
		}
		c.Next()
	}
}

func CallerFrom(c *ginext.Context) (domain.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}

// WithCaller нужен обработчикам в тестах без полного стека middleware.
func WithCaller(c *ginext.Context, caller domain.Caller) {
	c.Set(callerKey, caller)
}
