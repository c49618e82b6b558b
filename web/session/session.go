// Package session stores the logged-in identity and one-time flash
// messages in the cookie session.
package session

import (
	"encoding/gob"

	"gotodo/database/model"
	"gotodo/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUserKey   = "LOGIN_USER"
	currentUserKey = "CURRENT_USER"
)

// Flash is a single-use notification shown on the next rendered page.
// Handlers pass Flash values explicitly; nothing mutates flash state as a
// hidden side effect.
type Flash struct {
	Category string
	Message  string
}

const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

func init() {
	gob.Register(Flash{})
}

// SetLoginUser binds the session to the given user's id.
func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, user.Id)
	return s.Save()
}

// GetLoginUserId returns the user id bound to the session, if any.
func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserKey); obj != nil {
		if id, ok := obj.(int); ok {
			return id, true
		}
	}
	return 0, false
}

func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

// ClearSession drops everything stored in the session, including the login
// binding. The cookie itself survives so a flash queued right after (for
// example on logout) still reaches the next page.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// AddFlash queues a flash message for the next rendered page.
func AddFlash(c *gin.Context, flash Flash) error {
	s := sessions.Default(c)
	s.AddFlash(flash)
	return s.Save()
}

// TakeFlashes returns the queued flash messages and removes them from the
// session. Each flash is surfaced exactly once.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, obj := range raw {
		if flash, ok := obj.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	// Flashes() consumed them from the session, persist the removal.
	if err := s.Save(); err != nil {
		logger.Warning("unable to save session after reading flashes:", err)
	}
	return flashes
}

// SetCurrentUser places the resolved user into the request context. Called
// by the auth middleware only.
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(currentUserKey, user)
}

// LoginUser returns the resolved user for the request, or nil outside
// guarded routes.
func LoginUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(currentUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
