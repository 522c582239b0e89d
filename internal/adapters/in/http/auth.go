package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const consumerIDKey = "consumer_id"

var (
	errMissingToken   = errors.New("missing bearer token")
	errInvalidSubject = errors.New("token subject is not a consumer id")
)

// ConsumerAuth resolves the acting consumer from an HS256 bearer token whose
// "sub" claim holds the consumer id. Tokens are issued elsewhere.
func ConsumerAuth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			consumerID, err := consumerFromHeader(parser, keyFunc, ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Kind:    kindUnauthorized,
					Message: err.Error(),
				})
			}

			ctx.Set(consumerIDKey, consumerID)
			return next(ctx)
		}
	}
}

func consumerFromHeader(parser *jwt.Parser, keyFunc jwt.Keyfunc, header string) (int64, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, errMissingToken
	}

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, keyFunc); err != nil {
		return 0, err
	}

	consumerID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || consumerID <= 0 {
		return 0, errInvalidSubject
	}
	return consumerID, nil
}

// ConsumerID returns the consumer resolved by ConsumerAuth, or 0.
func ConsumerID(ctx echo.Context) int64 {
	id, _ := ctx.Get(consumerIDKey).(int64)
	return id
}
