package httpserver

import (
	"net/http"
	"strings"

	customersvc "jewelstore/internal/service/customer"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// resolveIdentity looks up the bearer token and stores the identity on the
// context. It aborts with 401 and returns nil when the token is missing or
// invalid.
func resolveIdentity(c *gin.Context, auth AuthService) *customersvc.Identity {
	tok := bearerToken(c)
	if tok == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil
	}
	ident, err := auth.LookupByToken(c.Request.Context(), tok)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil
	}
	c.Set(identityKey, ident)
	return ident
}

// authRequired resolves the bearer token into an identity and aborts with
// 401 when it cannot.
func authRequired(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveIdentity(c, auth)
	}
}

// adminRequired additionally rejects non-admin identities with 403. The
// IsAdmin check must run before the handler chain continues.
func adminRequired(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := resolveIdentity(c, auth)
		if ident == nil {
			return
		}
		if !ident.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		}
	}
}

func identityFrom(c *gin.Context) *customersvc.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, ok := v.(*customersvc.Identity)
	if !ok {
		return nil
	}
	return ident
}
