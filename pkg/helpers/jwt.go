package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation outcomes. Network-facing callers must collapse all of
// these into a single unauthenticated response.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrInvalidSubject = errors.New("token subject is not a valid id")
)

// JWTManager signs and verifies self-contained bearer tokens carrying a
// subject id (`sub`) and an absolute expiry (`exp`). The secret and the HMAC
// variant are configuration, not per-call choices.
type JWTManager struct {
	Secret []byte
	Method jwt.SigningMethod
	TTL    time.Duration
}

func NewJWTManager(secret string, method jwt.SigningMethod, ttl time.Duration) *JWTManager {
	return &JWTManager{
		Secret: []byte(secret),
		Method: method,
		TTL:    ttl,
	}
}

// SigningMethodByName maps a configured algorithm name to its HMAC method.
// Unknown names fall back to HS256.
func SigningMethodByName(name string) jwt.SigningMethod {
	switch name {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

// Issue signs a token for subject using the manager's default TTL.
func (m *JWTManager) Issue(subject uuid.UUID) (string, time.Time, error) {
	return m.IssueFor(subject, m.TTL)
}

// IssueFor signs a token for subject with an explicit lifetime; the issuance
// policy (1 day for logins, 30 days for test tooling) is the caller's call.
func (m *JWTManager) IssueFor(subject uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(m.Method, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Validate verifies signature and expiry and returns the subject id. A token
// past its expiry yields ErrTokenExpired; an unparseable token, a bad
// signature, a non-HMAC algorithm or a missing subject yield ErrTokenMalformed;
// a subject that is not a well-formed UUID yields ErrInvalidSubject.
func (m *JWTManager) Validate(tokenStr string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenMalformed
	}
	if !tkn.Valid || claims.Subject == "" {
		return uuid.Nil, ErrTokenMalformed
	}
	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return sub, nil
}
