package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_Deterministic(t *testing.T) {
	first := HashPassword("supersecret")
	second := HashPassword("supersecret")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}

func TestHashPassword_KnownDigest(t *testing.T) {
	digest := HashPassword("password")
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)
}

func TestHashPassword_DifferentInputs(t *testing.T) {
	assert.NotEqual(t, HashPassword("password1"), HashPassword("password2"))
}
