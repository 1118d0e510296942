// auth/password_test.go
package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinova/api/auth"
)

func TestBcryptHasher(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	t.Run("HashAndVerify", func(t *testing.T) {
		hash, err := hasher.Hash("Sup3r$ecret")
		assert.NoError(t, err)
		assert.NotEqual(t, "Sup3r$ecret", hash)
		assert.True(t, hasher.Verify("Sup3r$ecret", hash))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := hasher.Hash("Sup3r$ecret")
		assert.NoError(t, err)
		assert.False(t, hasher.Verify("wrong-password", hash))
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.Error(t, err)
	})

	t.Run("GarbageHash", func(t *testing.T) {
		assert.False(t, hasher.Verify("Sup3r$ecret", "not-a-bcrypt-hash"))
	})
}
