package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	var codec Codec

	hash, err := codec.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !codec.Verify("s3cret", hash) {
		t.Fatalf("expected hash to verify against original plaintext")
	}
	if codec.Verify("wrong", hash) {
		t.Fatalf("unrelated plaintext must not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	codec := Codec{Cost: 4} // min cost keeps the test fast

	h1, err := codec.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := codec.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same plaintext must differ (fresh salt)")
	}
	if !codec.Verify("same-input", h1) || !codec.Verify("same-input", h2) {
		t.Fatalf("both digests must verify against the plaintext")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	var codec Codec
	if codec.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed stored hash must verify as false")
	}
	if codec.Verify("anything", "") {
		t.Fatalf("empty stored hash must verify as false")
	}
}
