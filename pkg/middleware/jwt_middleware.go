package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuboard/internal/models/db_models"
	"menuboard/internal/policy"
	"menuboard/pkg/utils"
)

const actorKey = "actor"

func JWTAuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		role, err := db_models.ParseRole(claims.Role)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		unitID, err := uuid.Parse(claims.UnitID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(actorKey, policy.Actor{
			AccountID: accountID,
			Role:      role,
			UnitID:    unitID,
		})
		c.Set("user_id", claims.AccountID)
		c.Set("Role", string(role))
		c.Next()
	}
}

// ActorFromContext returns the caller set by JWTAuthMiddleware.
func ActorFromContext(c *gin.Context) (policy.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return policy.Actor{}, false
	}
	actor, ok := v.(policy.Actor)
	return actor, ok
}

func RoleMiddleware(requiredRole db_models.Role) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		if role != string(requiredRole) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
