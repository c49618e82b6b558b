package middleware

import (
	"net/http"

	"gotodo/logger"
	"gotodo/web/service"
	"gotodo/web/session"

	"github.com/gin-gonic/gin"
)

// RequireLogin guards a route group. Anonymous callers are redirected to
// loginPath without the inner handler running. For authenticated callers
// the user is resolved from the database and placed in the request context.
func RequireLogin(userService *service.UserService, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.GetLoginUserId(c)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		user, err := userService.GetUserById(id)
		if err != nil {
			logger.Warning("load session user err:", err)
		}
		if user == nil {
			// Stale session, the user id no longer resolves.
			if err := session.ClearSession(c); err != nil {
				logger.Warning("unable to clear stale session:", err)
			}
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		session.SetCurrentUser(c, user)
		c.Next()
	}
}
