package controller

import (
	"net"
	"net/http"
	"strings"

	"gotodo/config"
	"gotodo/logger"
	"gotodo/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the provided data, merging in the pending
// flash messages and the logged-in user.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()
	data["flashes"] = session.TakeFlashes(c)
	if user := session.LoginUser(c); user != nil {
		data["user"] = user
	}
	c.HTML(http.StatusOK, name, data)
}

// redirectWithFlash queues the flash for the next rendered page and
// redirects. The flash is an explicit argument so the side effect stays
// visible at the handler boundary.
func redirectWithFlash(c *gin.Context, location string, flash session.Flash) {
	if err := session.AddFlash(c, flash); err != nil {
		logger.Warning("unable to save flash:", err)
	}
	c.Redirect(http.StatusFound, location)
}
