package fastblur

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/text/encoding"
)

// EncryptBase64 obfuscates data and wraps the result in standard Base64 for
// textual transport. The input slice is not mutated.
func (e *Engine) EncryptBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(e.Encrypt(data))
}

// DecryptBase64 reverses EncryptBase64. Malformed Base64 surfaces as a decode
// error before any transform work happens.
func (e *Engine) DecryptBase64(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(raw) == 0 {
		return raw, nil
	}
	e.DecryptInPlace(raw)
	return raw, nil
}

// EncryptText converts s to bytes in the given character encoding, obfuscates
// them, and returns the Base64 form. A nil Encoding uses the string's UTF-8
// bytes directly.
func (e *Engine) EncryptText(s string, enc encoding.Encoding) (string, error) {
	data := []byte(s)
	if enc != nil {
		var err error
		data, err = enc.NewEncoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("encode text: %w", err)
		}
	}
	e.EncryptInPlace(data)
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecryptText reverses EncryptText with the same character encoding.
func (e *Engine) DecryptText(s string, enc encoding.Encoding) (string, error) {
	raw, err := e.DecryptBase64(s)
	if err != nil {
		return "", err
	}
	if enc != nil {
		raw, err = enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decode text: %w", err)
		}
	}
	return string(raw), nil
}
