package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/middleware"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/response"
)

// sessionStore resolves the authenticated user's state store, rendering a 401
// when the auth middleware did not run.
func sessionStore(c *gin.Context, registry *userstate.Registry) (*userstate.Store, bool) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if userID == "" {
		response.Error(c, errors.ErrUnauthorized)
		return nil, false
	}
	return registry.Get(c.Request.Context(), userID), true
}
