package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/otpshop/internal/domain"
	"github.com/GlebRadaev/otpshop/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const (
	ProfileIDKey ContextKey = "profileID"
	SessionKey   ContextKey = "session"
)

const (
	ProfileCookie   = "profile"
	profileLifetime = 365 * 24 * time.Hour
)

// ProfileStore is the slice of profile persistence the middlewares need.
type ProfileStore interface {
	Ensure(ctx context.Context, profileID string) (string, error)
	SessionToken(ctx context.Context, profileID string) (string, error)
}

// ProfileMiddleware resolves the browser profile from the bearer header or the profile cookie,
// creating a fresh profile when neither carries a valid one.
func ProfileMiddleware(jwtService JWTServiceInterface, store ProfileStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claimed string
			if raw := profileToken(r); raw != "" {
				if claims, err := jwtService.ValidateToken(raw); err == nil {
					claimed = claims.ProfileID
				}
			}

			profileID, err := store.Ensure(r.Context(), claimed)
			if err != nil {
				zap.L().Error("can't resolve profile", zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "")
				return
			}

			if profileID != claimed {
				token, err := jwtService.GenerateJWT(profileID, time.Now().Add(profileLifetime))
				if err != nil {
					zap.L().Error("can't sign profile token", zap.Error(err))
					utils.RespondWithError(w, http.StatusInternalServerError, "")
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     ProfileCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   int(profileLifetime.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ProfileIDKey, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func profileToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(ProfileCookie); err == nil {
		return c.Value
	}
	return ""
}

// RequireSession lets the request through only when the profile holds a session token.
// The token itself is not checked here; an expired one fails at the upstream.
func RequireSession(store ProfileStore, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID := ProfileID(r.Context())
			if profileID == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			token, err := store.SessionToken(r.Context(), profileID)
			if err != nil {
				zap.L().Error("can't load session", zap.String("profile", profileID), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "")
				return
			}
			if token == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			session := domain.Session{ProfileID: profileID, Token: token}
			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ProfileID(ctx context.Context) string {
	id, _ := ctx.Value(ProfileIDKey).(string)
	return id
}

func SessionFrom(ctx context.Context) domain.Session {
	s, _ := ctx.Value(SessionKey).(domain.Session)
	return s
}

func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, ProfileIDKey, profileID)
}

func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}
