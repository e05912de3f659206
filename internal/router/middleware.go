package router

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/handler"
	"gatepass/internal/model"
	"gatepass/internal/policy"
)

// DeviceKeyHeader carries the edge device pre-shared key.
const DeviceKeyHeader = "X-Device-Key"

var errTokenRevoked = errors.New("token revoked")

// JWTAuth validates access tokens and stores their claims under
// handler.ContextKeyUser. lookup is an echo-jwt TokenLookup expression.
func JWTAuth(jwtService *auth.JWTService, tokens auth.TokenStoreInterface, lookup string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: lookup,
		ContextKey:  handler.ContextKeyUser,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateAccessToken(token)
			if err != nil {
				return nil, err
			}
			if tokens != nil {
				revoked, _ := tokens.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if revoked {
					return nil, errTokenRevoked
				}
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing, invalid or expired token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireRole rejects callers that policy.Authorize does not admit.
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Authorize(handler.CallerFromContext(c), role); err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// DeviceKey guards edge-device routes with a pre-shared key. An empty key
// leaves the routes open.
func DeviceKey(key string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(echo.Context) bool {
			return key == ""
		},
		KeyLookup: "header:" + DeviceKeyHeader,
		Validator: func(presented string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(presented), []byte(key)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "invalid device key",
				Code:  "INVALID_DEVICE_KEY",
			})
		},
	})
}

// EdgeRateLimit limits requests per client IP. A non-positive perSecond
// disables limiting.
func EdgeRateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	if burst <= 0 {
		burst = int(perSecond) + 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(echo.Context) bool {
			return perSecond <= 0
		},
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Error: "rate limit exceeded",
				Code:  "RATE_LIMITED",
			})
		},
	})
}

// RequestLogger writes one slog line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
