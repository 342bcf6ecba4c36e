package middleware

import (
	"net/http"
	"strings"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// Authenticate requires a valid bearer token and stores the resolved caller
// on the gin context.
func Authenticate(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		caller, err := auth.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the caller set by Authenticate, or the zero Caller on
// unauthenticated routes.
func CallerFrom(c *gin.Context) entities.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return entities.Caller{}
	}
	caller, _ := v.(entities.Caller)
	return caller
}

// WithCaller is used by tests and internal routes to inject a caller without
// a token.
func WithCaller(caller entities.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(callerKey, caller)
		c.Next()
	}
}
