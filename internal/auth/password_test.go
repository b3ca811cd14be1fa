package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("hash must differ from the password")
	}

	ok, err := CheckPassword(hash, "correct horse")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	ok, err = CheckPassword(hash, "battery staple")
	if err != nil || ok {
		t.Fatalf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if _, err := CheckPassword("not-a-bcrypt-hash", "anything"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
