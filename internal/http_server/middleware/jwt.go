// Package middleware
package middleware

import (
	"errors"
	"strings"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const ClaimsContextKey = "user"

var errRefreshTokenAsAccess = errors.New("refresh token cannot authenticate requests")

// tokenError marks failures of a present token, anything else means no usable token was sent
type tokenError struct {
	err error
}

func (e *tokenError) Error() string { return e.err.Error() }

func (e *tokenError) Unwrap() error { return e.err }

// OptionalJWT authenticates the bearer token when one is sent. A request without a token goes on
// as anonymous and the services decide what it may do, a bad token is rejected with 401.
func OptionalJWT(config *c.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(_ echo.Context, auth string) (interface{}, error) {
			claims, err := service.ParseClaims(config, strings.TrimSpace(auth))
			if err != nil {
				return nil, &tokenError{err: err}
			}
			if claims.FlushToken {
				return nil, &tokenError{err: errRefreshTokenAsAccess}
			}
			return claims, nil
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(ctx echo.Context, err error) error {
			var tokenErr *tokenError
			if !errors.As(err, &tokenErr) {
				return nil
			}
			if err := service.NewErrorResponse(ctx, &service.ErrInvalidOrExpiredJwt); err != nil {
				return err
			}
			// non-nil stops the chain, the response is already committed
			return echo.ErrUnauthorized.WithInternal(tokenErr)
		},
	})
}

// JwtHeaderOf returns the caller identity set by OptionalJWT, the zero header for anonymous callers
func JwtHeaderOf(ctx echo.Context) service.JwtHeader {
	if claims, ok := ctx.Get(ClaimsContextKey).(*service.Claims); ok && claims != nil {
		return claims.Header()
	}
	return service.JwtHeader{}
}

func ClientInfoOf(ctx echo.Context) service.ClientInfo {
	return service.ClientInfo{Ip: ctx.RealIP(), UserAgent: ctx.Request().UserAgent()}
}
