package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "hunter22" {
		t.Error("hash must not equal the plaintext")
	}
	if !CheckPassword(hashed, "hunter22") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hashed, "hunter23") {
		t.Error("wrong password should not verify")
	}
}
