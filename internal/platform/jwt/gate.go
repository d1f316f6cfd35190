package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextIdentity is the gin context key holding the acting Identity.
const ContextIdentity = "identity"

const (
	msgTokenNotProvided = "token not provided"
	msgAdminOnly        = "access denied: administrators only"
)

// Verifier validates a raw token.
type Verifier interface {
	Verify(token string) (Identity, error)
}

// Outcome is the result class of an access decision.
type Outcome int

const (
	Allowed Outcome = iota
	Unauthorized
	Forbidden
)

// Decision is the result of Authorize: either an identity or a rejection reason.
type Decision struct {
	Outcome  Outcome
	Identity Identity
	Reason   string
}

// Status returns the HTTP status matching the outcome.
func (d Decision) Status() int {
	switch d.Outcome {
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusOK
	}
}

// Authorize decides whether an Authorization header grants access.
// The "Bearer " prefix is optional. When requireAdmin is set a valid
// non-admin token is Forbidden, never Unauthorized.
func Authorize(v Verifier, header string, requireAdmin bool) Decision {
	raw := strings.TrimLeft(header, " ")
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return Decision{Outcome: Unauthorized, Reason: msgTokenNotProvided}
	}

	id, err := v.Verify(raw)
	if err != nil {
		return Decision{Outcome: Unauthorized, Reason: err.Error()}
	}
	if requireAdmin && !id.IsAdmin() {
		return Decision{Outcome: Forbidden, Identity: id, Reason: msgAdminOnly}
	}
	return Decision{Outcome: Allowed, Identity: id}
}

// Gate builds route middlewares around a Verifier.
type Gate struct {
	verifier Verifier
}

// NewGate returns a Gate that validates tokens with v.
func NewGate(v Verifier) *Gate {
	return &Gate{verifier: v}
}

// Authenticated admits any request with a valid token.
func (g *Gate) Authenticated() gin.HandlerFunc {
	return g.handler(false)
}

// AdminOnly admits requests with a valid admin token.
func (g *Gate) AdminOnly() gin.HandlerFunc {
	return g.handler(true)
}

func (g *Gate) handler(requireAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := Authorize(g.verifier, c.GetHeader("Authorization"), requireAdmin)
		if d.Outcome != Allowed {
			c.AbortWithStatusJSON(d.Status(), gin.H{"success": false, "error": d.Reason})
			return
		}

		c.Set(ContextIdentity, d.Identity)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), d.Identity))
		c.Next()
	}
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored by the gate.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// ActorID returns the user id of the acting identity, or 0 outside the gate.
func ActorID(c *gin.Context) uint {
	id, _ := IdentityFrom(c.Request.Context())
	return id.UserID
}
