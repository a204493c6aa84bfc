package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// DefaultActor is stamped on audit records when no identity was supplied.
const DefaultActor = "Admin"

const actorContextKey = "Actor"

// InjectActor resolves the acting identity for the request: an X-Actor
// header wins and is remembered in the session, otherwise the session
// value is reused, otherwise the configured fallback. There is no
// authentication behind this; it only threads an attribution string to
// the audit journal.
func InjectActor(fallback string) gin.HandlerFunc {
	if fallback == "" {
		fallback = DefaultActor
	}
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		actor := fallback
		if v, ok := sess.Get("actor").(string); ok && v != "" {
			actor = v
		}

		if h := strings.TrimSpace(c.GetHeader("X-Actor")); h != "" {
			if h != actor {
				sess.Set("actor", h)
				_ = sess.Save()
			}
			actor = h
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFrom returns the identity InjectActor resolved for this request.
func ActorFrom(c *gin.Context) string {
	if v, ok := c.Get(actorContextKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return DefaultActor
}
