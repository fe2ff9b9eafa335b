package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/service"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// SessionMiddleware resolves the acting role once per request through the
// external session service and attaches it to the request context. The role
// is the only thing this layer consumes; session mechanics stay external.
func SessionMiddleware(sessionService service.SessionService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved, err := sessionService.ResolveSession(c.Request.Context())
		if err != nil {
			log.Debugw("session resolution failed",
				"path", c.Request.URL.Path,
				"error", err,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ierr.ErrorResponse{
				Success: false,
				Error: ierr.ErrorDetail{
					Display: "Sign in to review applications",
				},
			})
			return
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, types.CtxUserName, resolved.UserName)
		ctx = context.WithValue(ctx, types.CtxRole, resolved.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
