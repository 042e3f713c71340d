package httpapi

import (
	"context"
	"net/http"
	"time"

	"tatini-menu/menu-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	DeviceCookie  = "tatini_device"
	SessionCookie = "tatini_session"

	DeviceHeader  = "X-Device-ID"
	SessionHeader = "X-Session-ID"

	deviceCookieMaxAge = 365 * 24 * time.Hour
)

type ContextKey string

const identityContextKey ContextKey = "identity"

// IdentityMiddleware attaches the device and browser-session ids to the
// request, minting cookies for whichever is missing. Headers win over
// cookies so non-browser clients can pin their identity.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := requestID(r, DeviceHeader, DeviceCookie)
		if deviceID == "" {
			deviceID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     DeviceCookie,
				Value:    deviceID,
				Path:     "/",
				MaxAge:   int(deviceCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		sessionID := requestID(r, SessionHeader, SessionCookie)
		if sessionID == "" {
			sessionID = uuid.NewString()
			// No MaxAge: the browser drops it when the session ends.
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		id := domain.Identity{DeviceID: deviceID, SessionID: sessionID}
		ctx := context.WithValue(r.Context(), identityContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromRequest returns the identity set by IdentityMiddleware.
func IdentityFromRequest(r *http.Request) (domain.Identity, bool) {
	id, ok := r.Context().Value(identityContextKey).(domain.Identity)
	return id, ok
}

// requestID returns the header or cookie value if it is a UUID.
func requestID(r *http.Request, header, cookie string) string {
	if v := r.Header.Get(header); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	if c, err := r.Cookie(cookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	return ""
}
