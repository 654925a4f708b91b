package middleware

import (
	"strings"

	"oilwell-reports/internal/core/domain"
	"oilwell-reports/internal/pkg/jwt"
	"oilwell-reports/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// Gate responses are fixed and do not say which check failed
const (
	msgNoToken       = "Access denied. No token provided."
	msgInvalidToken  = "Invalid token."
	msgNotAuthorized = "Access denied. You are not authorized."
)

const (
	localUserID = "userID"
	localRole   = "role"
)

// TokenVerifier decodes access tokens
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// Authorize creates the authentication and role gate. An empty
// requiredRole (domain.RoleAny) admits any valid token; otherwise the
// token's role must equal requiredRole exactly.
func Authorize(tokens TokenVerifier, log zerolog.Logger, requiredRole domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := bearerToken(c.Get(fiber.HeaderAuthorization))
		if accessToken == "" {
			return response.Unauthorized(c, msgNoToken)
		}

		claims, err := tokens.Verify(accessToken)
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", RequestID(c)).
				Str("path", c.Path()).
				Msg("⚠️ Rejected access token")
			return response.Unauthorized(c, msgInvalidToken)
		}

		role := domain.Role(claims.Role)
		if !role.Satisfies(requiredRole) {
			return response.Forbidden(c, msgNotAuthorized)
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localRole, role)

		return c.Next()
	}
}

// AuthMiddleware admits any authenticated identity
func AuthMiddleware(tokens TokenVerifier, log zerolog.Logger) fiber.Handler {
	return Authorize(tokens, log, domain.RoleAny)
}

// AdminOnly middleware allows only the admin role
func AdminOnly(tokens TokenVerifier, log zerolog.Logger) fiber.Handler {
	return Authorize(tokens, log, domain.RoleAdmin)
}

// OperatorOnly middleware allows only the operator role
func OperatorOnly(tokens TokenVerifier, log zerolog.Logger) fiber.Handler {
	return Authorize(tokens, log, domain.RoleOperator)
}

// CurrentIdentity returns the identity attached by the gate
func CurrentIdentity(c *fiber.Ctx) (domain.Identity, bool) {
	userID, ok := c.Locals(localUserID).(uint)
	if !ok {
		return domain.Identity{}, false
	}
	role, _ := c.Locals(localRole).(domain.Role)
	return domain.Identity{UserID: userID, Role: role}, true
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequestID returns the id assigned by the requestid middleware, if any
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return id
}
