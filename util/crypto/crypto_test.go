package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordAsBcrypt(t *testing.T) {
	hash1, err := HashPasswordAsBcrypt("pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, "pw1", hash1)

	// bcrypt salts internally, equal inputs hash differently
	hash2, err := HashPasswordAsBcrypt("pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)

	assert.True(t, CheckPasswordHash(hash1, "pw1"))
	assert.True(t, CheckPasswordHash(hash2, "pw1"))
}

func TestCheckPasswordHashMismatch(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("pw1")
	assert.NoError(t, err)

	assert.False(t, CheckPasswordHash(hash, "pw2"))
	assert.False(t, CheckPasswordHash(hash, ""))
	assert.False(t, CheckPasswordHash("not-a-bcrypt-hash", "pw1"))
}
