package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/lucas-b-santos/invoice-dashboard/internal/auth/domain"
	obsctx "github.com/lucas-b-santos/invoice-dashboard/internal/observability/context"
)

const sessionCookie = "session"

// SessionRequired resolves the session cookie to a user and attaches the
// identity to the request context. Unauthenticated requests are sent to the
// login page.
func (s *Server) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := s.authSvc.Lookup(c.Request.Context(), token)
		if err != nil {
			if authdomain.IsAuthError(err) {
				s.clearSessionCookie(c)
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			AbortWithError(c, err)
			return
		}

		ctx := obsctx.WithUserID(c.Request.Context(), user.ID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(sessionCookie, token, maxAge, "/", "", s.cfg.SessionSecure, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", s.cfg.SessionSecure, true)
}
