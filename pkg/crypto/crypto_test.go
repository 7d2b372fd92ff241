package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNewEncryptor_KeyValidation(t *testing.T) {
	_, err := NewEncryptor("")
	assert.Error(t, err)

	_, err = NewEncryptor("curta")
	assert.Error(t, err)

	enc, err := NewEncryptor(testKey)
	assert.NoError(t, err)
	assert.NotNil(t, enc)
}

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	assert.NoError(t, err)

	stored, err := enc.Encrypt("EAAGtoken-de-acesso-longo")
	assert.NoError(t, err)

	// Formato armazenado: iv:tag:ciphertext
	assert.Len(t, strings.Split(stored, ":"), 3)

	plain, err := enc.Decrypt(stored)
	assert.NoError(t, err)
	assert.Equal(t, "EAAGtoken-de-acesso-longo", plain)
}

func TestEncryptor_EncryptIsNonDeterministic(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	assert.NoError(t, err)

	first, err := enc.Encrypt("mesmo-segredo")
	assert.NoError(t, err)
	second, err := enc.Encrypt("mesmo-segredo")
	assert.NoError(t, err)

	// IV aleatório: o mesmo segredo nunca produz o mesmo valor armazenado
	assert.NotEqual(t, first, second)
}

func TestEncryptor_DecryptLegacyHexFormat(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	assert.NoError(t, err)

	// Monta manualmente um valor no formato legado (campos em hex)
	block, err := aes.NewCipher([]byte(testKey))
	assert.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	assert.NoError(t, err)

	iv := make([]byte, gcm.NonceSize())
	_, err = rand.Read(iv)
	assert.NoError(t, err)

	sealed := gcm.Seal(nil, iv, []byte("token-legado"), nil)
	tagStart := len(sealed) - gcm.Overhead()

	stored := strings.Join([]string{
		hex.EncodeToString(iv),
		hex.EncodeToString(sealed[tagStart:]),
		hex.EncodeToString(sealed[:tagStart]),
	}, ":")

	plain, err := enc.Decrypt(stored)
	assert.NoError(t, err)
	assert.Equal(t, "token-legado", plain)
}

func TestEncryptor_DecryptRejectsGarbage(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	assert.NoError(t, err)

	_, err = enc.Decrypt("sem-separador")
	assert.Error(t, err)

	_, err = enc.Decrypt("a:b:c")
	assert.Error(t, err)

	// Valor bem formado cifrado com outra chave não autentica
	other, err := NewEncryptor("ffffffffffffffffffffffffffffffff")
	assert.NoError(t, err)

	stored, err := other.Encrypt("segredo")
	assert.NoError(t, err)

	_, err = enc.Decrypt(stored)
	assert.Error(t, err)
}
