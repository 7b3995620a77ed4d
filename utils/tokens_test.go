package utils

import "testing"

func TestGenerateShortToken(t *testing.T) {
	token := GenerateShortToken(4)
	if len(token) != 8 {
		t.Fatalf("expected 8 hex chars for 4 bytes, got %q", token)
	}
	for _, r := range token {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("unexpected character %q in token %q", r, token)
		}
	}

	if GenerateShortToken(8) == GenerateShortToken(8) {
		t.Fatal("two tokens should not collide")
	}
}
