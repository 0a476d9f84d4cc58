package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of the password. The digest is
// deterministic and unsalted: login re-hashes the supplied password and
// compares digests. Kept for compatibility with the existing user table;
// known-weak, see DESIGN.md before deploying.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
