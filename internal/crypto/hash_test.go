package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}

	// Verify PHC format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashPassword() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyPasswordCorrect(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() returned false for correct password")
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassword() returned true for wrong password")
	}
}

func TestHashPasswordProducesDifferentHashes(t *testing.T) {
	password := "same-password"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	_, err := VerifyPassword("password", "invalid-hash-format")
	if err == nil {
		t.Error("VerifyPassword() expected error for invalid hash format")
	}
}

func TestVerifyPasswordLegacyWerkzeug(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{
			name:     "pbkdf2 correct",
			hash:     "pbkdf2:sha256:1000$abcSALT$f2480eec035b34297c89b87ef883852c77fa9fab24309a1365b183f29cb83dfb",
			password: "secret-pass",
			want:     true,
		},
		{
			name:     "pbkdf2 wrong",
			hash:     "pbkdf2:sha256:1000$abcSALT$f2480eec035b34297c89b87ef883852c77fa9fab24309a1365b183f29cb83dfb",
			password: "secret-pasz",
			want:     false,
		},
		{
			name:     "scrypt correct",
			hash:     "scrypt:1024:8:1$s4lt$fcfd8264476bb74ea69b326493089ed5795202d6706cec3652f21ed702d6b5b8da34bf6b3d28ded985bc50f6b1e70e7ecf55d48030b8201365af06b35b455bee",
			password: "secret-pass",
			want:     true,
		},
		{
			name:     "scrypt wrong",
			hash:     "scrypt:1024:8:1$s4lt$fcfd8264476bb74ea69b326493089ed5795202d6706cec3652f21ed702d6b5b8da34bf6b3d28ded985bc50f6b1e70e7ecf55d48030b8201365af06b35b455bee",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.hash)
			if err != nil {
				t.Fatalf("VerifyPassword() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyPasswordLegacyMalformed(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{name: "missing parts", hash: "pbkdf2:sha256:1000$onlysalt", want: ErrInvalidHashFormat},
		{name: "bad hex", hash: "pbkdf2:sha256:1000$salt$zz", want: ErrInvalidHashFormat},
		{name: "unknown digest", hash: "pbkdf2:md5:1000$salt$00", want: ErrUnsupportedHash},
		{name: "bad iterations", hash: "pbkdf2:sha256:many$salt$00", want: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("password", tt.hash)
			if !errors.Is(err, tt.want) {
				t.Errorf("VerifyPassword() error = %v, want %v", err, tt.want)
			}
		})
	}
}
