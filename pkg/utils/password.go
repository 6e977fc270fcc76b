package utils

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Two password schemes coexist while stored credentials migrate: bcrypt is
// current, MD5 hex digests are the legacy format still present in older
// deployments. The stored hash itself tells us which verifier applies.

const bcryptPrefix = "$2"

// PasswordVerifier verifies a plain password against one hash scheme.
type PasswordVerifier interface {
	Verify(password, hash string) bool
}

type bcryptVerifier struct{}

func (bcryptVerifier) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type legacyMD5Verifier struct{}

func (legacyMD5Verifier) Verify(password, hash string) bool {
	sum := md5.Sum([]byte(password))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(hash))) == 1
}

// SelectVerifier picks the scheme for a stored hash. bcrypt hashes carry the
// "$2" prefix; anything else is treated as a legacy digest.
func SelectVerifier(hash string) PasswordVerifier {
	if strings.HasPrefix(hash, bcryptPrefix) {
		return bcryptVerifier{}
	}
	return legacyMD5Verifier{}
}

// VerifyPassword checks password against hash using whichever scheme the hash
// was written in.
func VerifyPassword(password, hash string) bool {
	return SelectVerifier(hash).Verify(password, hash)
}

// HashPassword produces a hash in the current scheme. New credentials are
// always bcrypt; the legacy scheme is verify-only.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
