package utils

import (
	"github.com/gin-gonic/gin" // Gin web framework
)

// flashCookie is the cookie carrying a one-shot flash message
const flashCookie = "flash"

// SetFlash stores a message shown on the next rendered page
func SetFlash(c *gin.Context, message string) {
	// Short-lived; cleared again as soon as it is read
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// GetFlash returns the pending flash message, if any, and clears it
func GetFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true) // Consume the message
	return msg
}
