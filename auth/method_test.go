package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod_Set(t *testing.T) {
	var method Method

	for _, v := range []string{"none", "passthrough"} {
		require.NoError(t, method.Set(v))
		assert.Equal(t, MethodPassthrough, method)
	}

	for _, v := range []string{"token", "bearer"} {
		require.NoError(t, method.Set(v))
		assert.Equal(t, MethodToken, method)
	}

	require.NoError(t, method.Set("basic"))
	assert.Equal(t, MethodBasic, method)

	require.NoError(t, method.Set("oauth2"))
	assert.Equal(t, MethodOauth2, method)
	assert.Equal(t, "oauth2", method.String())

	err := method.Set("carrier-pigeon")
	assert.EqualError(t, err, `unexpected Method "carrier-pigeon"`)
}
