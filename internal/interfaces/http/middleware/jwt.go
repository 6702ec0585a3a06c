package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/baerenfell/backend/internal/infrastructure/auth"
	"github.com/baerenfell/backend/internal/interfaces/http/dto"
)

// Context keys for authenticated request data
const (
	ContextKeyClaims    = "jwt_claims"
	ContextKeyUserID    = "jwt_user_id"
	ContextKeyUserEmail = "jwt_user_email"
	ContextKeyUserRole  = "jwt_user_role"
)

// TokenValidator validates a bearer token and returns its claims
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// setClaims stores claims in the gin context
func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextKeyClaims, claims)
	c.Set(ContextKeyUserID, claims.Subject)
	c.Set(ContextKeyUserEmail, claims.Email)
	c.Set(ContextKeyUserRole, claims.Role)
}

// JWTAuth requires a valid bearer token
func JWTAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing or malformed Authorization header"))
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth attaches claims when a valid bearer token is present but
// lets anonymous requests through. An invalid token is still rejected.
func OptionalJWTAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid token"))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests without the admin role.
// Must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the gin context, nil when anonymous
func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(ContextKeyClaims); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserEmail retrieves the authenticated user's email, empty when anonymous
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ContextKeyUserEmail)
}

// IsAdmin reports whether the request carries an admin token
func IsAdmin(c *gin.Context) bool {
	claims := GetClaims(c)
	return claims != nil && claims.IsAdmin()
}
