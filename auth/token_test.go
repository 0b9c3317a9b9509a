package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Configure(t *testing.T) {
	var ta TokenAuthenticator

	err := ta.Configure(map[string]interface{}{
		"token": "deadbeef",
	})
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", ta.Token)

	err = ta.Configure(map[string]interface{}{})
	assert.EqualError(t, err, "missing token")

	err = ta.Configure(map[string]interface{}{
		"token":  "deadbeef",
		"issuer": "keymint.example",
	})
	assert.EqualError(t, err, "unexpected fields in config: issuer")
}

func TestToken_EncodeHeader(t *testing.T) {
	var ta TokenAuthenticator

	_, err := ta.EncodeHeader()
	assert.EqualError(t, err, "missing token")

	err = ta.Configure(map[string]interface{}{
		"token": "deadbeef",
	})
	require.NoError(t, err)

	header, err := ta.EncodeHeader()
	require.NoError(t, err)
	assert.Equal(t, "Bearer deadbeef", header)

	// unchanged across repeated encodings
	header, err = ta.EncodeHeader()
	require.NoError(t, err)
	assert.Equal(t, "Bearer deadbeef", header)
}
