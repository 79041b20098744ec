package api

import (
	"errors"                           // Error matching
	"net/http"                         // HTTP status codes
	"task_tracker/internal/middleware" // Session cookie handling
	"task_tracker/internal/service"    // Auth service
	"task_tracker/internal/utils"      // Flash and token helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// IndexHandler sends authenticated visitors to the dashboard and
// everyone else to the login page
func IndexHandler(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(middleware.SessionCookie)
		if err == nil && token != "" {
			// Only a parse check here; the dashboard middleware
			// re-resolves the user against the database
			if _, err := utils.ParseSessionToken(token, secret); err == nil {
				c.Redirect(http.StatusFound, "/dashboard")
				return
			}
		}
		c.Redirect(http.StatusFound, "/login")
	}
}

// RegisterPageHandler renders the registration form
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"flash": utils.GetFlash(c), // Pending flash message, if any
		})
	}
}

// RegisterHandler creates a new account from the submitted form
func RegisterHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username") // Submitted username
		password := c.PostForm("password") // Submitted password
		if err := svc.Register(username, password); err != nil {
			switch {
			case errors.Is(err, service.ErrUsernameTaken):
				utils.SetFlash(c, "Username already exists!")
			case errors.Is(err, service.ErrEmptyField):
				utils.SetFlash(c, "Username and password are required!")
			default:
				// Unexpected failure; never log the password
				logrus.WithFields(logrus.Fields{
					"username": username,
					"error":    err.Error(),
				}).Error("Registration failed")
				utils.SetFlash(c, "Something went wrong, please try again.")
			}
			c.Redirect(http.StatusFound, "/register")
			return
		}
		logrus.WithField("username", username).Info("User registered")
		c.Redirect(http.StatusFound, "/login") // Fresh accounts log in next
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"flash": utils.GetFlash(c), // Pending flash message, if any
		})
	}
}

// LoginHandler verifies credentials and binds the session to the user
func LoginHandler(svc *service.AuthService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username") // Submitted username
		password := c.PostForm("password") // Submitted password
		user, err := svc.Authenticate(username, password)
		if err != nil {
			// Bad username and bad password look identical to the client
			utils.SetFlash(c, "Invalid Login!")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		token, err := utils.GenerateSessionToken(user.ID, secret) // Sign a session token
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to sign session token")
			utils.SetFlash(c, "Something went wrong, please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		// Bind the session: HttpOnly cookie carrying the signed token
		c.SetCookie(middleware.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
		logrus.WithField("user_id", user.ID).Info("User logged in")
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LogoutHandler unbinds the session. Idempotent.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.ClearSession(c)
		c.Redirect(http.StatusFound, "/login")
	}
}
