package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/token"
)

const (
	contextKeyUserID = "auth.userID"
	contextKeyRole   = "auth.role"
)

// authenticate verifies the Bearer token and stores the caller's identity
// and role on the request context.
func authenticate(issuer token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := issuer.Parse(raw)
			if err != nil {
				return writeError(ctx, err)
			}

			userID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return writeError(ctx, token.ErrTokenIsInvalid)
			}
			rol, err := user.RoleFromString(claims.Role)
			if err != nil {
				return writeError(ctx, token.ErrTokenIsInvalid)
			}

			ctx.Set(contextKeyUserID, userID)
			ctx.Set(contextKeyRole, rol)
			return next(ctx)
		}
	}
}

// requireRole rejects authenticated callers whose role is not in the list.
func requireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rol := callerRole(ctx)
			for _, allowed := range roles {
				if rol == allowed {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "insufficient role",
			})
		}
	}
}

func callerID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(contextKeyUserID).(kernel.UUID)
	return id
}

func callerRole(ctx echo.Context) user.Role {
	rol, _ := ctx.Get(contextKeyRole).(user.Role)
	return rol
}
