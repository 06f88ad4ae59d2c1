package serverutils

import (
	"os"

	"interview-platform-be/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const principalLocal = "principal"

func parseToken(tokenStr string) (*auth.Principal, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return auth.FromClaims(claims), nil
}

// JwtMiddleware requires a valid bearer token and stores the principal in
// request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	principal, err := parseToken(authHeader[7:])
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	ctx.Locals(principalLocal, principal)
	return ctx.Next()
}

// OptionalJwtMiddleware parses a bearer token when present but lets guests
// through with a nil principal. Interviewees join rooms unauthenticated.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	tokenStr := ""
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		tokenStr = authHeader[7:]
	}
	// Browser websocket clients cannot set headers; accept ?token= as well.
	if tokenStr == "" {
		tokenStr = ctx.Query("token")
	}

	if tokenStr != "" {
		if principal, err := parseToken(tokenStr); err == nil {
			ctx.Locals(principalLocal, principal)
		}
	}
	return ctx.Next()
}

// PrincipalFromCtx returns the authenticated principal, or nil for a guest.
func PrincipalFromCtx(ctx *fiber.Ctx) *auth.Principal {
	if p, ok := ctx.Locals(principalLocal).(*auth.Principal); ok {
		return p
	}
	return nil
}
