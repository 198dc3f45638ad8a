package mongy

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestArgon2_Hash(t *testing.T) {
	h := Argon2(DefaultArgon2Params())

	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$") {
		t.Errorf("Hash() = %q, want prefix $argon2id$v=19$m=65536,t=1,p=4$", hash)
	}
}

func TestArgon2_DifferentSalts(t *testing.T) {
	h := Argon2(DefaultArgon2Params())
	plaintext := []byte("password123")

	hash1, _ := h.Hash(plaintext)
	hash2, _ := h.Hash(plaintext)

	if hash1 == hash2 {
		t.Error("same plaintext should produce different hashes (random salt)")
	}
}

func TestArgon2_CustomParams(t *testing.T) {
	h := Argon2(Argon2Params{
		Time:    2,
		Memory:  32 * 1024,
		Threads: 2,
		KeyLen:  16,
		SaltLen: 8,
	})

	hash, err := h.Hash([]byte("test"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=32768,t=2,p=2$") {
		t.Errorf("Hash() = %q, want custom parameters in prefix", hash)
	}
}

func TestDefaultArgon2Params(t *testing.T) {
	params := DefaultArgon2Params()

	if params.Time != 1 {
		t.Errorf("Time = %d, want 1", params.Time)
	}
	if params.Memory != 64*1024 {
		t.Errorf("Memory = %d, want %d", params.Memory, 64*1024)
	}
	if params.Threads != 4 {
		t.Errorf("Threads = %d, want 4", params.Threads)
	}
	if params.KeyLen != 32 {
		t.Errorf("KeyLen = %d, want 32", params.KeyLen)
	}
	if params.SaltLen != 16 {
		t.Errorf("SaltLen = %d, want 16", params.SaltLen)
	}
}

func TestBcrypt_Hash(t *testing.T) {
	h, _ := HasherFor(HashBcrypt)

	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")); err != nil {
		t.Errorf("CompareHashAndPassword() error: %v", err)
	}
}

func TestSHA256_Hash(t *testing.T) {
	h, _ := HasherFor(HashSHA256)

	hash, err := h.Hash([]byte("hello"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if hash != want {
		t.Errorf("Hash() = %q, want %q", hash, want)
	}
}

func TestSHA512_Hash(t *testing.T) {
	h, _ := HasherFor(HashSHA512)

	hash1, err := h.Hash([]byte("hello"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	hash2, _ := h.Hash([]byte("hello"))

	if len(hash1) != 128 {
		t.Errorf("len(Hash()) = %d, want 128", len(hash1))
	}
	if hash1 != hash2 {
		t.Error("SHA-512 should be deterministic")
	}
}

func TestHasherFor_Unknown(t *testing.T) {
	if _, ok := HasherFor("md5"); ok {
		t.Error("HasherFor(md5) should not be found")
	}
}
