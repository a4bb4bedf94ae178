package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientIDHeader carries the caller's stable identity. Clients store the
// value they are handed and replay it on every request; favorites and
// history are keyed by it.
const ClientIDHeader = "X-Client-ID"

// ClientID resolves the caller's identity for the request. A missing or
// blank header mints a fresh id, and the effective id is always echoed
// back so first-time clients learn theirs.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("clientID", id)
		c.Header(ClientIDHeader, id)
		c.Next()
	}
}
