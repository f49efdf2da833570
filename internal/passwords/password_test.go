package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.NoError(t, VerifyPassword(hash, "Sup3rSecret"))
	assert.Error(t, VerifyPassword(hash, "sup3rsecret"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("Sup3rSecret")
	assert.NoError(t, err)
	second, err := HashPassword("Sup3rSecret")
	assert.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
}
