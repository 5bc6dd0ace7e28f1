package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	BearerPrefix              = "bearer"
	AdminTokenIssuer          = "configurator"
	AdminTokenAudience        = "admin"
	DefaultClockSkewTolerance = 5 * time.Minute

	adminSubjectKey = "admin_subject"
)

var ErrAdminAuthDisabled = errors.New("admin authentication is not configured")

// AdminAuthenticator verifies HS256 bearer tokens issued to back-office users.
// With an empty secret every admin request is refused.
type AdminAuthenticator struct {
	secret    []byte
	clockSkew time.Duration
	now       func() time.Time
}

func NewAdminAuthenticator(secret string) *AdminAuthenticator {
	return &AdminAuthenticator{
		secret:    []byte(secret),
		clockSkew: DefaultClockSkewTolerance,
		now:       time.Now,
	}
}

// Issue signs a token for subject that expires after ttl.
func (a *AdminAuthenticator) Issue(subject string, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrAdminAuthDisabled
	}
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    AdminTokenIssuer,
		Audience:  jwt.ClaimStrings{AdminTokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify checks the Authorization header of r and returns the token subject.
func (a *AdminAuthenticator) Verify(r *http.Request) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrAdminAuthDisabled
	}

	tokenString, err := extractBearerToken(r)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now), jwt.WithLeeway(a.clockSkew))
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if err = a.validateClaims(claims); err != nil {
		return "", fmt.Errorf("invalid claims: %w", err)
	}

	return claims.Subject, nil
}

func (a *AdminAuthenticator) validateClaims(claims *jwt.RegisteredClaims) error {
	if claims.Subject == "" {
		return errors.New("missing subject claim")
	}
	if claims.Issuer != AdminTokenIssuer {
		return fmt.Errorf("invalid issuer: got %s, want %s", claims.Issuer, AdminTokenIssuer)
	}
	if !slices.Contains(claims.Audience, AdminTokenAudience) {
		return fmt.Errorf("invalid audience: missing %s", AdminTokenAudience)
	}
	if claims.ExpiresAt == nil {
		return errors.New("missing expiration claim")
	}
	if claims.IssuedAt != nil && claims.IssuedAt.After(a.now().Add(a.clockSkew)) {
		return errors.New("token issued too far in future")
	}
	return nil
}

// AuthenticationFunc plugs the authenticator into request validation for
// operations that declare the adminAuth scheme. The subject is stored on the
// echo context for handlers to log.
func (a *AdminAuthenticator) AuthenticationFunc() openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		if input.SecuritySchemeName != "adminAuth" {
			return fmt.Errorf("security scheme %s is not supported", input.SecuritySchemeName)
		}

		subject, err := a.Verify(input.RequestValidationInput.Request)
		if err != nil {
			return err
		}

		if c, ok := ctx.Value(echoContextKey).(echo.Context); ok {
			c.Set(adminSubjectKey, subject)
		}
		return nil
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerPrefix) {
		return "", errors.New("invalid authorization format")
	}

	return parts[1], nil
}

func adminSubject(ctx echo.Context) string {
	subject, _ := ctx.Get(adminSubjectKey).(string)
	return subject
}
