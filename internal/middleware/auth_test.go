package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contentcraft/internal/auth"
	"contentcraft/internal/httputil"
)

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = httputil.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(tokens)(next)

	issue := func(t *testing.T, m *auth.TokenManager) string {
		t.Helper()
		token, err := m.Issue("user-9", "x@example.com")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		return token
	}

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
		wantUserID string
	}{
		{
			name:       "public path needs no token",
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "register is public",
			path:       "/api/auth/register",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			path:       "/api/projects",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			path:       "/api/projects",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			path:       "/api/projects",
			authHeader: "Bearer garbage",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			path:       "/api/projects",
			authHeader: "Bearer " + issue(t, auth.NewTokenManager("secret", -time.Minute)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token passes user id through",
			path:       "/api/projects",
			authHeader: "Bearer " + issue(t, tokens),
			wantStatus: http.StatusOK,
			wantUserID: "user-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantUserID != "" && gotUserID != tt.wantUserID {
				t.Errorf("user id = %q, want %q", gotUserID, tt.wantUserID)
			}
		})
	}
}
