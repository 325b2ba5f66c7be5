package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIDLength bounds inbound IDs. Longer values are replaced, not truncated.
const maxIDLength = 128

// idPropagation describes one identifier carried from the inbound request
// to the response headers, the context logger and upstream calls.
type idPropagation struct {
	header string
	key    string
	store  func(ctx context.Context, id string) context.Context
	tagLog func(ctx context.Context, id string) context.Context
}

func (p idPropagation) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(p.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(p.key, id)
		c.Header(p.header, id)

		ctx := p.tagLog(p.store(c.Request.Context(), id), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// validID accepts IDs safe to echo into headers and logs: non-empty,
// at most maxIDLength bytes, printable ASCII without spaces.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}
