// Package testauth signs access tokens accepted by middlewares.AuthMiddleware.
package testauth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const Secret = "test-secret"

// Setup points the auth middleware at Secret for the duration of the test.
// Call it before the router is built.
func Setup(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", Secret)
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func Organizer(t *testing.T) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: "access_token", Value: sign(t, jwt.MapClaims{"user_id": "organizer-1", "role": "organizer"})}
}

func Judge(t *testing.T, judgeID string) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: "access_token", Value: sign(t, jwt.MapClaims{"user_id": "judge-user-" + judgeID, "role": "judge", "judge_id": judgeID})}
}
