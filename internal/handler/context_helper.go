package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pta-api/internal/middleware"
	"github.com/noah-isme/pta-api/internal/models"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
	"github.com/noah-isme/pta-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// ensureActor rejects an authenticated caller acting as another user. Anonymous requests pass.
func ensureActor(c *gin.Context, actorID string) bool {
	claims := claimsFromContext(c)
	if claims == nil || claims.UserID == actorID {
		return true
	}
	response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "cannot act on behalf of another user"))
	return false
}

func respondWithMeta(c *gin.Context, status int, data interface{}, cacheHit bool) {
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, status, data, middleware.ExtractMeta(c))
}
