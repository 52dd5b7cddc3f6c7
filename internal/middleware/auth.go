package middleware

import (
	"net/http"
	"strings"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ClaimsKey = "claims"
)

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireTier rejects requests whose effective role tier falls below min.
// A user's effective tier is the highest tier among their roles.
func RequireTier(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || model.HighestTier(claims.Roles) < min.Tier() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}

// ActorTier returns the effective tier of the authenticated caller, or -1
// when the route is unauthenticated.
func ActorTier(c *gin.Context) int {
	claims := GetClaims(c)
	if claims == nil {
		return -1
	}
	return model.HighestTier(claims.Roles)
}
