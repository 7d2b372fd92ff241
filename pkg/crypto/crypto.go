package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// KeyLength é o tamanho obrigatório da chave (AES-256)
	KeyLength = 32

	// Separador entre IV, tag de autenticação e texto cifrado no valor armazenado
	separator = ":"
)

// Encryptor encapsula a criptografia simétrica dos tokens de acesso
type Encryptor struct {
	key []byte
}

// NewEncryptor cria um Encryptor a partir da chave configurada.
// Uma chave ausente ou com tamanho errado é um erro fatal de configuração.
func NewEncryptor(key string) (*Encryptor, error) {
	if key == "" {
		return nil, fmt.Errorf("chave de criptografia não configurada (CRYPTO_SECRET_KEY)")
	}

	if len(key) != KeyLength {
		return nil, fmt.Errorf("chave de criptografia deve ter %d bytes, mas tem %d", KeyLength, len(key))
	}

	return &Encryptor{key: []byte(key)}, nil
}

// Encrypt criptografa o segredo com AES-GCM e retorna o formato armazenado:
// base64(iv):base64(tag):base64(ciphertext)
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("erro ao criar cifra AES: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("erro ao criar GCM: %w", err)
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("erro ao gerar IV: %w", err)
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)

	// O Seal devolve ciphertext||tag; armazenamos os campos separados
	tagStart := len(sealed) - gcm.Overhead()
	ciphertext := sealed[:tagStart]
	tag := sealed[tagStart:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(tag),
		base64.StdEncoding.EncodeToString(ciphertext),
	}, separator), nil
}

// Decrypt descriptografa um valor armazenado. Aceita o formato atual
// (campos em base64) e o formato legado (campos em hex), distinguidos
// pelo primeiro campo: um IV em hex tem exatamente o dobro do tamanho
// do IV em bytes e só contém dígitos hexadecimais.
func (e *Encryptor) Decrypt(stored string) (string, error) {
	parts := strings.Split(stored, separator)
	if len(parts) != 3 {
		return "", fmt.Errorf("valor criptografado em formato inválido")
	}

	var iv, tag, ciphertext []byte
	var err error

	if isLegacyHexField(parts[0]) {
		iv, tag, ciphertext, err = decodeFields(parts, hex.DecodeString)
	} else {
		iv, tag, ciphertext, err = decodeFields(parts, base64.StdEncoding.DecodeString)
	}
	if err != nil {
		return "", fmt.Errorf("erro ao decodificar valor criptografado: %w", err)
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", fmt.Errorf("erro ao criar cifra AES: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("erro ao criar GCM: %w", err)
	}

	if len(iv) != gcm.NonceSize() {
		return "", fmt.Errorf("IV com tamanho inválido: %d", len(iv))
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("erro ao descriptografar: %w", err)
	}

	return string(plaintext), nil
}

func decodeFields(parts []string, decode func(string) ([]byte, error)) ([]byte, []byte, []byte, error) {
	iv, err := decode(parts[0])
	if err != nil {
		return nil, nil, nil, err
	}

	tag, err := decode(parts[1])
	if err != nil {
		return nil, nil, nil, err
	}

	ciphertext, err := decode(parts[2])
	if err != nil {
		return nil, nil, nil, err
	}

	return iv, tag, ciphertext, nil
}

// isLegacyHexField verifica se o campo parece o IV do formato legado (hex).
// O IV do GCM tem 12 bytes, logo 24 caracteres hexadecimais.
func isLegacyHexField(field string) bool {
	if len(field) != 24 {
		return false
	}

	_, err := hex.DecodeString(field)
	return err == nil
}
