package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CaptchaVerifier is satisfied by the captcha adapter client.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) error
}

// RequireCaptcha checks X-Captcha-Token on public mutating routes. A nil
// verifier disables the check (captcha not configured).
func RequireCaptcha(v CaptchaVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if v == nil {
				return next(c)
			}
			token := strings.TrimSpace(c.Request().Header.Get("X-Captcha-Token"))
			if err := v.Verify(c.Request().Context(), token); err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "captcha verification failed"})
			}
			return next(c)
		}
	}
}
