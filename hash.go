package mongy

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// HashAlgo names a supported one-way hash.
type HashAlgo string

const (
	// HashArgon2 uses Argon2id (salted, slow).
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt uses bcrypt (salted, slow).
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 uses SHA-256 (deterministic). Suitable for fingerprints, not passwords.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512 (deterministic). Suitable for fingerprints, not passwords.
	HashSHA512 HashAlgo = "sha512"
)

// Hasher performs one-way hashing.
type Hasher interface {
	// Hash returns the encoded hash of plaintext. Salted hashers include
	// their salt and parameters in the result.
	Hash(plaintext []byte) (string, error)
}

// HasherFunc adapts a function to the Hasher interface.
type HasherFunc func(plaintext []byte) (string, error)

// Hash calls f(plaintext).
func (f HasherFunc) Hash(plaintext []byte) (string, error) { return f(plaintext) }

var hashers = map[HashAlgo]Hasher{
	HashArgon2: Argon2(DefaultArgon2Params()),
	HashBcrypt: HasherFunc(hashBcrypt),
	HashSHA256: HasherFunc(hashSHA256),
	HashSHA512: HasherFunc(hashSHA512),
}

// HasherFor returns the built-in hasher for algo.
func HasherFor(algo HashAlgo) (Hasher, bool) {
	h, ok := hashers[algo]
	return h, ok
}

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns the OWASP-recommended Argon2id parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// Argon2 returns an Argon2id hasher. Results are encoded as
// $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>.
func Argon2(params Argon2Params) Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		salt := make([]byte, params.SaltLen)
		if _, err := rand.Read(salt); err != nil {
			return "", fmt.Errorf("generate salt: %w", err)
		}
		sum := argon2.IDKey(plaintext, salt, params.Time, params.Memory, params.Threads, params.KeyLen)
		return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
			argon2.Version,
			params.Memory,
			params.Time,
			params.Threads,
			base64.RawStdEncoding.EncodeToString(salt),
			base64.RawStdEncoding.EncodeToString(sum),
		), nil
	})
}

func hashBcrypt(plaintext []byte) (string, error) {
	sum, err := bcrypt.GenerateFromPassword(plaintext, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(sum), nil
}

func hashSHA256(plaintext []byte) (string, error) {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

func hashSHA512(plaintext []byte) (string, error) {
	sum := sha512.Sum512(plaintext)
	return hex.EncodeToString(sum[:]), nil
}
