package handler

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "sap_flash"

// Flash is a one-shot acknowledgment surfaced on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

func setFlash(c *gin.Context, kind, message string) {
	value := url.QueryEscape(kind + "|" + message)
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// popFlash reads and clears the pending flash, if any.
func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Kind: parts[0], Message: parts[1]}
}
