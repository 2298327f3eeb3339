package web

import (
	"net/http"
	"regexp"
	"strings"

	"inkwell/auth"
	"inkwell/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type SignupRequest struct {
	Username string `form:"username"`
	Name     string `form:"name"`
	Password string `form:"password"`
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+$`)

// Usernames live at the root of the URL space, so the static route
// segments are off limits.
var reservedUsernames = map[string]bool{
	"new":    true,
	"group":  true,
	"follow": true,
	"auth":   true,
	"media":  true,
}

// safeNext only allows local redirect targets.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

func Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "login.tmpl", gin.H{"next": c.Query("next")})
		return
	}
	r := LoginRequest{}
	_ = c.ShouldBindWith(&r, binding.Form)
	user, ok := models.UserLogin(r.Username, r.Password)
	if !ok {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"next":     r.Next,
			"username": r.Username,
			"error":    "Wrong username or password.",
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(r.Next))
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

func Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "signup.tmpl", gin.H{
			"form":   SignupRequest{},
			"errors": map[string]string{},
		})
		return
	}
	r := SignupRequest{}
	_ = c.ShouldBindWith(&r, binding.Form)
	errs := map[string]string{}
	switch {
	case strings.TrimSpace(r.Username) == "":
		errs["username"] = "This field is required."
	case !usernamePattern.MatchString(r.Username):
		errs["username"] = "Letters, digits and _.+- only."
	case reservedUsernames[r.Username]:
		errs["username"] = "This username is not available."
	default:
		if _, err := models.UserByUsername(r.Username); err == nil {
			errs["username"] = "This username is taken."
		}
	}
	if r.Password == "" {
		errs["password"] = "This field is required."
	}
	if len(errs) > 0 {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": r, "errors": errs})
		return
	}
	user, err := models.UserCreate(r.Username, r.Name, r.Password)
	if err != nil {
		if models.IsDuplicateEntry(err) {
			errs["username"] = "This username is taken."
			render(c, http.StatusOK, "signup.tmpl", gin.H{"form": r, "errors": errs})
			return
		}
		ServerError(c)
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}
