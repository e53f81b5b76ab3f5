// internal/auth/auth_test.go
package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "admin@example.com")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("unexpected email claim: %s", claims.Email)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token must not verify under a different secret")
	}
}

func TestPasswordCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
