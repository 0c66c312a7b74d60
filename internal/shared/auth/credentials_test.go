package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecret(t *testing.T) {
	// Known SHA-256 vector.
	assert.Equal(t,
		"c592df4a86933b92addc9842402ddf198c638ea9be58916ee6e3734e1e3152f8",
		HashSecret("pw1"))

	assert.Equal(t, HashSecret("secret"), HashSecret("secret"))
	assert.NotEqual(t, HashSecret("secret"), HashSecret("Secret"))
}

func TestDecodeBasicHeader(t *testing.T) {
	testCases := []struct {
		name         string
		header       string
		wantUsername string
		wantErr      bool
	}{
		{
			name:         "valid credentials",
			header:       "Basic YWxpY2U6cHcx", // alice:pw1
			wantUsername: "alice",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Bearer YWxpY2U6cHcx",
			wantErr: true,
		},
		{
			name:    "invalid base64",
			header:  "Basic not-base64!!!",
			wantErr: true,
		},
		{
			name:    "no colon separator",
			header:  "Basic YWxpY2U=", // alice
			wantErr: true,
		},
		{
			name:         "lowercase scheme accepted",
			header:       "basic YWxpY2U6cHcx",
			wantUsername: "alice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := DecodeBasicHeader(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMalformedHeader)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantUsername, creds.Username)
			assert.Equal(t, HashSecret("pw1"), creds.PasswordDigest)
		})
	}
}
