package server

import "github.com/gin-gonic/gin"

// Flash cookie names observed by the listing page.
const (
	flashInvoiceCreated = "invoiceCreated"
	flashInvoiceUpdated = "invoiceUpdated"
)

// setFlash sets a one-shot notification cookie. The one second max-age lets
// the next page load observe the flag before it expires; there is no explicit
// clear.
func (s *Server) setFlash(c *gin.Context, name string) {
	c.SetCookie(name, "1", 1, "/", "", s.cfg.SessionSecure, true)
}

func hasFlash(c *gin.Context, name string) bool {
	_, err := c.Cookie(name)
	return err == nil
}
