package auth

import (
	"testing"
	"time"

	"github.com/articledesk/articles-cli/internal/utils/test/so"

	"github.com/golang-jwt/jwt/v5"
)

func TestMemoryTokenStore(t *testing.T) {
	t.Run("should report no token before one is saved", func(t *testing.T) {
		store := NewMemoryTokenStore()

		token, ok := store.LoadToken()
		so.So(t, ok, so.ShouldBeFalse)
		so.So(t, token, so.ShouldBeBlank)
	})

	t.Run("should overwrite and clear the saved token", func(t *testing.T) {
		store := NewMemoryTokenStore()

		so.So(t, store.SaveToken("T1"), so.ShouldBeNil)
		so.So(t, store.SaveToken("T2"), so.ShouldBeNil)

		token, ok := store.LoadToken()
		so.So(t, ok, so.ShouldBeTrue)
		so.So(t, token, so.ShouldEqual, "T2")

		so.So(t, store.ClearToken(), so.ShouldBeNil)

		_, ok = store.LoadToken()
		so.So(t, ok, so.ShouldBeFalse)
	})
}

func TestParseClaims(t *testing.T) {
	t.Run("should decode the claims of a signed token", func(t *testing.T) {
		exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(exp.Add(-24 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(exp),
			},
			UserID: 7,
		}).SignedString([]byte("secret"))
		so.So(t, err, so.ShouldBeNil)

		claims, err := ParseClaims(token)
		so.So(t, err, so.ShouldBeNil)
		so.So(t, claims.UserID, so.ShouldEqual, int64(7))

		expiresAt, ok := claims.ExpiresAt()
		so.So(t, ok, so.ShouldBeTrue)
		so.So(t, expiresAt.Equal(exp), so.ShouldBeTrue)

		so.So(t, claims.Expired(exp.Add(-time.Second)), so.ShouldBeFalse)
		so.So(t, claims.Expired(exp), so.ShouldBeTrue)
	})

	t.Run("should fail for an opaque token", func(t *testing.T) {
		_, err := ParseClaims("T1")
		so.So(t, err, so.ShouldBeError, "token is not a JWT")
	})

	t.Run("should fail for a malformed token", func(t *testing.T) {
		_, err := ParseClaims("a.b.c")
		so.So(t, err, so.ShouldNotBeNil)
		so.So(t, err.Error(), so.ShouldContainSubstring, "failed to parse token claims")
	})

	t.Run("should report no expiration when the claim is missing", func(t *testing.T) {
		var claims Claims
		_, ok := claims.ExpiresAt()
		so.So(t, ok, so.ShouldBeFalse)
		so.So(t, claims.Expired(time.Now()), so.ShouldBeFalse)
	})
}

func TestRedact(t *testing.T) {
	for _, tc := range []struct {
		description string
		token       string
		display     string
	}{
		{"With an empty token", "", ""},
		{"With a short token", "abc", "***"},
		{"With a long token", "eyJhbGciOiJIUzI1NiJ9.abcd", "********abcd"},
	} {
		t.Run(tc.description, func(t *testing.T) {
			so.So(t, Redact(tc.token), so.ShouldEqual, tc.display)
		})
	}
}
