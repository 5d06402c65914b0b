package credentials_test

import (
	"testing"

	"careerbridge/pkg/credentials"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := credentials.NewBcrypt(bcryptTestCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, h.Verify(hash, "s3cret"))
	require.Error(t, h.Verify(hash, "wrong"))
}

func TestBcryptHasher_DistinctHashes(t *testing.T) {
	h := credentials.NewBcrypt(bcryptTestCost)

	first, err := h.Hash("s3cret")
	require.NoError(t, err)
	second, err := h.Hash("s3cret")
	require.NoError(t, err)

	// bcrypt salts every hash
	require.NotEqual(t, first, second)
}

// bcryptTestCost keeps the tests fast; production uses the bcrypt default.
const bcryptTestCost = 4
