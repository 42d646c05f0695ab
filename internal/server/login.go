package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/lucas-b-santos/invoice-dashboard/internal/auth/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/render"
)

// User-facing authentication messages. Credential failures and other auth
// failures get distinct texts; unexpected errors are not translated.
const (
	msgInvalidCredentials = "Invalid credentials."
	msgAuthWentWrong      = "Something went wrong."
)

func (s *Server) ShowLogin(c *gin.Context) {
	s.renderLogin(c, http.StatusOK, render.LoginData{})
}

// Login verifies submitted credentials. Any previous session is discarded.
func (s *Server) Login(c *gin.Context) {
	if !s.loginLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrRateLimited)
		return
	}

	var creds authdomain.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		s.renderLogin(c, http.StatusUnauthorized, render.LoginData{Message: msgInvalidCredentials})
		return
	}
	creds.Email = strings.TrimSpace(creds.Email)

	result, err := s.authSvc.SignIn(c.Request.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrInvalidCredentials):
			s.renderLogin(c, http.StatusUnauthorized, render.LoginData{
				Email:   creds.Email,
				Message: msgInvalidCredentials,
			})
		case authdomain.IsAuthError(err):
			s.renderLogin(c, http.StatusUnauthorized, render.LoginData{
				Email:   creds.Email,
				Message: msgAuthWentWrong,
			})
		default:
			AbortWithError(c, err)
		}
		return
	}

	maxAge := int(time.Until(result.ExpiresAt) / time.Second)
	s.setSessionCookie(c, result.Token, maxAge)

	if s.auditSvc != nil {
		_ = s.auditSvc.AuditLog(c.Request.Context(), "auth.sign_in", "user", result.User.ID.String(), map[string]any{
			"email": result.User.Email,
		})
	}

	c.Redirect(http.StatusSeeOther, "/dashboard/invoices")
}

func (s *Server) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		if err := s.authSvc.SignOut(c.Request.Context(), token); err != nil {
			AbortWithError(c, err)
			return
		}
	}
	s.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) renderLogin(c *gin.Context, status int, data render.LoginData) {
	html, err := s.renderer.LoginPage(data)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}
