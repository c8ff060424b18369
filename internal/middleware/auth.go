package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/apierr"
	"github.com/yoftil7/task-api/internal/auth"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Verdict is the outcome of an authorization predicate.
type Verdict int

const (
	Allow Verdict = iota
	DenyAuthentication
	DenyAuthorization
)

// Predicate inspects a request and returns a typed verdict. Predicates
// compose: the first non-Allow verdict wins.
type Predicate func(c *gin.Context) Verdict

// Auth resolves the bearer credential into a caller identity on the context.
// Requests with a missing, malformed, invalid or expired credential never
// reach a handler.
func Auth(jwtKey string) gin.HandlerFunc {
	return Require(Authenticated(jwtKey))
}

// Require evaluates predicates in order and maps the first denial to its
// error kind.
func Require(predicates ...Predicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, predicate := range predicates {
			switch predicate(c) {
			case DenyAuthentication:
				apierr.Write(c, apierr.Authentication("authentication required"))
				return
			case DenyAuthorization:
				apierr.Write(c, apierr.Authorization("insufficient role"))
				return
			}
		}
		c.Next()
	}
}

// Authenticated verifies the bearer token and records the caller's id and
// role on the context.
func Authenticated(jwtKey string) Predicate {
	return func(c *gin.Context) Verdict {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return DenyAuthentication
		}

		userID, role, err := auth.ParseToken(jwtKey, tokenString)
		if err != nil {
			return DenyAuthentication
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		return Allow
	}
}

// HasRole allows callers whose role claim is in the given set. It assumes an
// Authenticated predicate ran earlier in the chain.
func HasRole(roles ...string) Predicate {
	return func(c *gin.Context) Verdict {
		role, ok := c.Get(ctxRole)
		if !ok {
			return DenyAuthentication
		}
		for _, allowed := range roles {
			if role == allowed {
				return Allow
			}
		}
		return DenyAuthorization
	}
}

// CallerID returns the user id resolved by the Auth middleware.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

// CallerRole returns the role claim resolved by the Auth middleware.
func CallerRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}
