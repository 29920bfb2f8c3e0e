package token

import "testing"

func TestGenerateRandomToken_Unique(t *testing.T) {
	a, err := GenerateRandomToken(32)
	if err != nil {
		t.Fatalf("GenerateRandomToken: %v", err)
	}
	b, err := GenerateRandomToken(32)
	if err != nil {
		t.Fatalf("GenerateRandomToken: %v", err)
	}
	if a == b {
		t.Fatal("two generated tokens are identical")
	}
	if len(a) == 0 {
		t.Fatal("generated token is empty")
	}
}

func TestHashSHA256_Deterministic(t *testing.T) {
	h1 := HashSHA256("some-token")
	h2 := HashSHA256("some-token")
	if h1 != h2 {
		t.Error("hashing the same token gave different results")
	}
	if h1 == HashSHA256("other-token") {
		t.Error("different tokens hashed to the same value")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
}
