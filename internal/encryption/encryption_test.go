// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package encryption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	e, err := NewEncrypter("super-secret", "")
	require.NoError(t, err)

	payload := `{"apiKey":"sk-test","baseUrl":"https://example.com"}`

	sealed, err := e.Encrypt(payload)
	require.NoError(t, err)

	parts := strings.Split(sealed, ":")
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], ivLength*2)
	assert.Len(t, parts[1], tagLength*2)
	assert.NotContains(t, sealed, "sk-test")

	opened, err := e.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, payload, opened)
}

func TestEncryptUsesFreshIV(t *testing.T) {
	e, err := NewEncrypter("super-secret", "pepper")
	require.NoError(t, err)

	a, err := e.Encrypt("same")
	require.NoError(t, err)
	b, err := e.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecryptWithWrongKey(t *testing.T) {
	e1, err := NewEncrypter("key-one", "salt")
	require.NoError(t, err)
	e2, err := NewEncrypter("key-two", "salt")
	require.NoError(t, err)

	sealed, err := e1.Encrypt("secret")
	require.NoError(t, err)

	_, err = e2.Decrypt(sealed)
	assert.Error(t, err)
}

func TestDecryptMalformed(t *testing.T) {
	e, err := NewEncrypter("super-secret", "salt")
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ""},
		{name: "two parts", payload: "aa:bb"},
		{name: "non hex iv", payload: "zz:00000000000000000000000000000000:00"},
		{name: "short iv", payload: "0000:00000000000000000000000000000000:00"},
		{name: "short tag", payload: "000000000000000000000000:00:00"},
		{name: "non hex body", payload: "000000000000000000000000:00000000000000000000000000000000:xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Decrypt(tt.payload)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestDecryptTampered(t *testing.T) {
	e, err := NewEncrypter("super-secret", "salt")
	require.NoError(t, err)

	sealed, err := e.Encrypt("secret")
	require.NoError(t, err)

	parts := strings.Split(sealed, ":")
	body := []byte(parts[2])
	if body[0] == '0' {
		body[0] = '1'
	} else {
		body[0] = '0'
	}

	_, err = e.Decrypt(strings.Join([]string{parts[0], parts[1], string(body)}, ":"))
	assert.Error(t, err)
}

func TestNewEncrypterRequiresKey(t *testing.T) {
	_, err := NewEncrypter("", "salt")
	assert.ErrorIs(t, err, ErrEmptyKey)
}
