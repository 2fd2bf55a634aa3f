package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	// Arrange
	password := "mysecretpassword123"

	// Act
	hash, err := HashPassword(password)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash) // Хэш не должен совпадать с паролем
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	// Arrange
	password := "mysecretpassword123"

	// Act
	hash1, err1 := HashPassword(password)
	hash2, err2 := HashPassword(password)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, hash1, hash2) // bcrypt использует random salt, поэтому хэши разные
}

func TestCheckPassword_CorrectPassword(t *testing.T) {
	// Arrange
	password := "mysecretpassword123"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	// Act
	ok := CheckPassword(password, hash)

	// Assert
	assert.True(t, ok)
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	// Arrange
	hash, err := HashPassword("mysecretpassword123")
	require.NoError(t, err)

	// Act
	ok := CheckPassword("wrongpassword", hash)

	// Assert
	assert.False(t, ok)
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	// Act
	ok := CheckPassword("password", "not-a-bcrypt-hash")

	// Assert
	assert.False(t, ok)
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	// Act
	hash, err := HashPassword("")

	// Assert
	require.NoError(t, err) // bcrypt позволяет пустые пароли
	assert.NotEmpty(t, hash)
	assert.True(t, CheckPassword("", hash))
}
