package auth

import "testing"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("secret", "user-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Name != "Alice" || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a JTI in the claims")
	}
}

func TestTokensHaveUniqueJTIs(t *testing.T) {
	t1, _ := GenerateToken("secret", "user-1", "Alice", "alice@example.com")
	t2, _ := GenerateToken("secret", "user-1", "Alice", "alice@example.com")

	c1, _ := ValidateToken("secret", t1)
	c2, _ := ValidateToken("secret", t2)
	if c1.ID == c2.ID {
		t.Error("expected distinct JTIs for separate tokens")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken("secret", "user-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Error("expected hash to differ from the password")
	}
	if !CheckPassword(hash, "hunter2hunter2") {
		t.Error("expected correct password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
