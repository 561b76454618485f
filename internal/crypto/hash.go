package crypto

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrUnsupportedHash     = errors.New("unsupported password hash method")
)

// HashParams configures the Argon2id hashing parameters.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns recommended Argon2id parameters for password hashing.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// HashPassword hashes a password using Argon2id with default parameters.
// Returns the hash encoded in PHC string format.
func HashPassword(password string) (string, error) {
	params := DefaultHashParams()

	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	// Encode in PHC format: $argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-hash>
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory,
		params.Iterations,
		params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyPassword checks whether a password matches the given encoded hash.
// Argon2id PHC strings are produced by HashPassword; werkzeug-style
// "pbkdf2:..." and "scrypt:..." hashes are accepted for accounts created by
// the previous service.
func VerifyPassword(password, encodedHash string) (bool, error) {
	if strings.HasPrefix(encodedHash, "pbkdf2:") || strings.HasPrefix(encodedHash, "scrypt:") {
		return verifyWerkzeug(password, encodedHash)
	}
	return verifyArgon2(password, encodedHash)
}

func verifyArgon2(password, encodedHash string) (bool, error) {
	params, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	if subtle.ConstantTimeCompare(hash, candidate) == 1 {
		return true, nil
	}

	return false, nil
}

// decodeHash parses a PHC-formatted Argon2id hash string.
func decodeHash(encodedHash string) (HashParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}

	if parts[1] != "argon2id" {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return HashParams{}, nil, nil, ErrIncompatibleVersion
	}

	var params HashParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}
	params.SaltLength = uint32(len(salt))

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}
	params.KeyLength = uint32(len(hash))

	return params, salt, hash, nil
}

// verifyWerkzeug checks "method$salt$hexdigest" hashes. The salt is used as
// raw text, not decoded.
func verifyWerkzeug(password, encodedHash string) (bool, error) {
	parts := strings.SplitN(encodedHash, "$", 3)
	if len(parts) != 3 {
		return false, ErrInvalidHashFormat
	}
	method, salt := parts[0], parts[1]

	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, ErrInvalidHashFormat
	}

	args := strings.Split(method, ":")
	var candidate []byte

	switch args[0] {
	case "pbkdf2":
		if len(args) < 2 {
			return false, ErrInvalidHashFormat
		}
		newHash, err := hashByName(args[1])
		if err != nil {
			return false, err
		}
		iterations := 260000
		if len(args) == 3 {
			iterations, err = strconv.Atoi(args[2])
			if err != nil || iterations <= 0 {
				return false, ErrInvalidHashFormat
			}
		}
		candidate = pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash)

	case "scrypt":
		n, r, p := 1<<15, 8, 1
		if len(args) == 4 {
			var errN, errR, errP error
			n, errN = strconv.Atoi(args[1])
			r, errR = strconv.Atoi(args[2])
			p, errP = strconv.Atoi(args[3])
			if errN != nil || errR != nil || errP != nil {
				return false, ErrInvalidHashFormat
			}
		} else if len(args) != 1 {
			return false, ErrInvalidHashFormat
		}
		candidate, err = scrypt.Key([]byte(password), []byte(salt), n, r, p, 64)
		if err != nil {
			return false, ErrInvalidHashFormat
		}

	default:
		return false, ErrUnsupportedHash
	}

	return subtle.ConstantTimeCompare(want, candidate) == 1, nil
}

func hashByName(name string) (func() hash.Hash, error) {
	switch name {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	default:
		return nil, ErrUnsupportedHash
	}
}
