package controller

import (
	"errors"
	"net/http"
	"text/template"

	"gotodo/logger"
	"gotodo/web/service"
	"gotodo/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the credentials submitted by the login and
// registration forms.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// IndexController handles registration, login and logout.
type IndexController struct {
	userService service.UserService
}

// NewIndexController creates an IndexController and initializes its routes.
// Logout lives on the guarded group, everything else is public.
func NewIndexController(g *gin.RouterGroup, guarded *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g, guarded)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup, guarded *gin.RouterGroup) {
	g.GET("/register", a.registerForm)
	g.POST("/register", a.register)
	g.GET("/login", a.loginForm)
	g.POST("/login", a.login)

	guarded.GET("/logout", a.logout)
}

func (a *IndexController) registerForm(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "register.html", "Register", nil)
}

func (a *IndexController) register(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/register", session.Flash{Category: session.FlashWarning, Message: "Invalid form data"})
		return
	}

	user, err := a.userService.CreateUser(form.Username, form.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		redirectWithFlash(c, "/register", session.Flash{Category: session.FlashWarning, Message: "Username is already taken"})
		return
	} else if err != nil {
		logger.Warning("create user err:", err)
		redirectWithFlash(c, "/register", session.Flash{Category: session.FlashWarning, Message: err.Error()})
		return
	}

	logger.Infof("%s registered successfully", template.HTMLEscapeString(user.Username))
	redirectWithFlash(c, "/login", session.Flash{Category: session.FlashSuccess, Message: "Registration successful, please log in"})
}

func (a *IndexController) loginForm(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login verifies credentials and establishes the session. On failure the
// form is re-rendered with one generic warning, no hint which field was
// wrong.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		a.rerenderLogin(c, "Invalid form data")
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	safeUser := template.HTMLEscapeString(form.Username)

	if user == nil {
		logger.Warningf("failed login for %q, IP: %q", safeUser, getRemoteIp(c))
		a.rerenderLogin(c, "Wrong username or password")
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		a.rerenderLogin(c, "Unable to start a session")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", safeUser, getRemoteIp(c))
	redirectWithFlash(c, "/", session.Flash{Category: session.FlashSuccess, Message: "Logged in successfully"})
}

// rerenderLogin re-renders the login form with a warning, no redirect. The
// flash is queued and consumed within the same request.
func (a *IndexController) rerenderLogin(c *gin.Context, msg string) {
	if err := session.AddFlash(c, session.Flash{Category: session.FlashWarning, Message: msg}); err != nil {
		logger.Warning("unable to save flash:", err)
	}
	html(c, "login.html", "Login", nil)
}

func (a *IndexController) logout(c *gin.Context) {
	if user := session.LoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	redirectWithFlash(c, "/login", session.Flash{Category: session.FlashInfo, Message: "Logged out"})
}
