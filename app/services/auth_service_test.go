package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
)

const testSecret = "test-secret"

type fakeVerifier map[string]*services.GoogleProfile

func (f fakeVerifier) Verify(ctx context.Context, credential string) (*services.GoogleProfile, error) {
	if p, ok := f[credential]; ok {
		return p, nil
	}
	return nil, errors.New("bad credential")
}

var alice = &services.GoogleProfile{Subject: "g-123", Email: "alice@example.com", Name: "Alice", Picture: "https://pic.example/a.png"}

func TestSignInWithGoogle(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := testdb.Open(t)
	svc := services.NewAuthService(db, fakeVerifier{"good": alice}, testSecret)

	result, err := svc.SignInWithGoogle(ctx, "good")
	c.Assert(err, qt.IsNil)
	c.Assert(result.Token, qt.Not(qt.Equals), "")
	c.Assert(result.User.Email, qt.Equals, "alice@example.com")
	c.Assert(result.User.Name, qt.Equals, "Alice")

	claims, err := svc.ParseToken(result.Token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, result.User.ID)
	c.Assert(claims.Email, qt.Equals, "alice@example.com")
	c.Assert(claims.ExpiresAt.Sub(claims.IssuedAt.Time), qt.Equals, 24*time.Hour)

	// signing in again reuses the account
	again, err := svc.SignInWithGoogle(ctx, "good")
	c.Assert(err, qt.IsNil)
	c.Assert(again.User.ID, qt.Equals, result.User.ID)

	users, err := svc.ListUsers(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(users, qt.HasLen, 1)
	c.Assert(*users[0].GoogleID, qt.Equals, "g-123")

	user, err := svc.CurrentUser(ctx, result.User.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(user.Picture, qt.Equals, "https://pic.example/a.png")

	_, err = svc.CurrentUser(ctx, "missing")
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)
}

func TestSignInLinksExistingEmail(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := testdb.Open(t)

	existing := &models.User{Name: "Alice", Email: "alice@example.com"}
	c.Assert(db.Create(existing).Error, qt.IsNil)

	svc := services.NewAuthService(db, fakeVerifier{"good": alice}, testSecret)
	result, err := svc.SignInWithGoogle(ctx, "good")
	c.Assert(err, qt.IsNil)
	c.Assert(result.User.ID, qt.Equals, existing.ID)

	var stored models.User
	c.Assert(db.First(&stored, "id = ?", existing.ID).Error, qt.IsNil)
	c.Assert(stored.GoogleID, qt.IsNotNil)
	c.Assert(*stored.GoogleID, qt.Equals, "g-123")
}

func TestSignInRejectsBadCredential(t *testing.T) {
	c := qt.New(t)
	svc := services.NewAuthService(testdb.Open(t), fakeVerifier{}, testSecret)

	_, err := svc.SignInWithGoogle(context.Background(), "forged")
	c.Assert(errors.Is(err, services.ErrUnauthorized), qt.IsTrue)
}

func TestParseTokenRejects(t *testing.T) {
	svc := services.NewAuthService(testdb.Open(t), fakeVerifier{}, testSecret)
	valid, err := svc.IssueToken(&models.User{ID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	sign := func(method jwt.SigningMethod, secret string, expires time.Time) string {
		token := jwt.NewWithClaims(method, &services.Claims{
			UserID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expires),
			},
		})
		s, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid + "x"},
		{name: "wrong secret", token: sign(jwt.SigningMethodHS256, "other", time.Now().Add(time.Hour))},
		{name: "unexpected algorithm", token: sign(jwt.SigningMethodHS512, testSecret, time.Now().Add(time.Hour))},
		{name: "expired", token: sign(jwt.SigningMethodHS256, testSecret, time.Now().Add(-time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			_, err := svc.ParseToken(tt.token)
			c.Assert(errors.Is(err, services.ErrUnauthorized), qt.IsTrue)
		})
	}
}
