package middleware

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/config"
	repo "storefront/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey   = "session_id" // string
	SessionCookieName = "storefront_session"

	sessionTTL = 7 * 24 * time.Hour
)

// ゲストセッション用のミドルウェア。
// 署名付きCookieからセッションIDを取り出す。無い・壊れている・期限切れなら
// その場で新しいセッションを発行する（401にはしない）。
func GuestSession(cfg config.Config, sessions repo.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if sid, ok := sessionIDFromCookie(c, cfg); ok {
				// 署名が正しくてもプロセス再起動で状態は消えているかもしれない
				if _, err := sessions.FindByID(ctx, sid); err == nil {
					c.Set(CtxSessionIDKey, sid)
					return next(c)
				}
			}

			//新しいゲストセッションを発行
			sid := uuid.NewString()
			if _, err := sessions.Create(ctx, sid); err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("session error"))
			}

			signed, err := signSessionToken(cfg, sid)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("session error"))
			}

			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    signed,
				Path:     "/",
				Expires:  time.Now().Add(sessionTTL),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   cfg.GoEnv == "prod",
			})

			c.Set(CtxSessionIDKey, sid)
			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// CookieのJWTを検証してセッションIDを取り出す。
func sessionIDFromCookie(c echo.Context, cfg config.Config) (string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}

	return sid, true
}

func signSessionToken(cfg config.Config, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(cfg.SessionSecret))
}
