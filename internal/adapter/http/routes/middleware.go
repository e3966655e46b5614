package routes

import (
	"log"
	"net/http"

	"susunara/internal/adapter/http/handlers"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests without a valid admin session token.
// The token travels as an Authorization bearer header (X-Admin-Token is
// accepted as a fallback).
func RequireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handlers.SessionToken(c)

		ok, err := auth.IsAuthenticated(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] session check failed: %v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !ok {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "A valid session is required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}
