package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sali72/expense-tracker/pkg/helpers"
	"github.com/sali72/expense-tracker/pkg/response"
)

const ctxUserIDKey = "userID"

// RouteClass is the access class of a route template.
type RouteClass int

const (
	// Protected routes require a resolved identity for every method.
	Protected RouteClass = iota
	// Public routes are served unconditionally.
	Public
	// Registration routes accept POST without identity (self-registration);
	// any other method is treated as protected.
	Registration
)

// Policy classifies route templates. It holds no request state: the access
// decision is a pure function of (route, method, identity-presence).
type Policy struct {
	public       map[string]struct{}
	registration map[string]struct{}
}

func NewPolicy() *Policy {
	return &Policy{
		public:       map[string]struct{}{},
		registration: map[string]struct{}{},
	}
}

func (p *Policy) AllowPublic(routes ...string) *Policy {
	for _, r := range routes {
		p.public[r] = struct{}{}
	}
	return p
}

func (p *Policy) AllowRegistration(routes ...string) *Policy {
	for _, r := range routes {
		p.registration[r] = struct{}{}
	}
	return p
}

// Classify returns the access class of a route template. Unknown routes are
// Protected.
func (p *Policy) Classify(route string) RouteClass {
	if _, ok := p.public[route]; ok {
		return Public
	}
	if _, ok := p.registration[route]; ok {
		return Registration
	}
	return Protected
}

// RequiresIdentity reports whether a request for (route, method) may only
// proceed with a resolved identity.
func (p *Policy) RequiresIdentity(route, method string) bool {
	switch p.Classify(route) {
	case Public:
		return false
	case Registration:
		return method != http.MethodPost
	default:
		return true
	}
}

// DefaultPolicy matches the API surface: token issuance and debug metrics are
// public, the users collection is self-registration, everything else needs a
// resolved identity.
func DefaultPolicy() *Policy {
	return NewPolicy().
		AllowPublic("/api/auth/token/", "/api/debug/vars").
		AllowRegistration("/api/users/")
}

// BearerToken extracts the credential from an Authorization header of the
// exact form "Bearer <token>" (case-insensitive scheme, single space).
func BearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || token == "" || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return token, true
}

// Access enforces the route policy before any handler runs. The bearer token
// is resolved when present; if the route needs an identity and none resolved,
// the request short-circuits with the single 401 shape. Missing header, bad
// scheme, malformed token and expired token are indistinguishable on the wire.
func Access(p *Policy, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		resolved := false
		if token, ok := BearerToken(c.GetHeader("Authorization")); ok {
			if sub, err := jwt.Validate(token); err == nil {
				c.Set(ctxUserIDKey, sub)
				resolved = true
			}
		}

		if p.RequiresIdentity(route, c.Request.Method) && !resolved {
			response.Unauthenticated(c)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated subject stored by Access.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
