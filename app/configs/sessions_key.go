package configs

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

// LoadSessionKeys decodes APP_AUTH_KEY and APP_ENC_KEY. When both are unset
// it falls back to random keys, so sessions do not survive a restart.
func LoadSessionKeys(env ENV) (*SessionKeys, error) {
	if env.AppAuthKey == "" && env.AppEncKey == "" {
		return &SessionKeys{
			AuthKey: securecookie.GenerateRandomKey(64),
			EncKey:  securecookie.GenerateRandomKey(32),
		}, nil
	}
	if env.AppAuthKey == "" {
		return nil, fmt.Errorf("APP_AUTH_KEY environment variable not set")
	}
	if env.AppEncKey == "" {
		return nil, fmt.Errorf("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(env.AppAuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY from Base64: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(env.AppEncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY from Base64: %w", err)
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}

	return &SessionKeys{AuthKey: authKey, EncKey: encKey}, nil
}

// GeneratedKeys holds fresh secrets in the form expected by .env.
type GeneratedKeys struct {
	AppAuthKey string
	AppEncKey  string
	JWTSecret  string
}

func GenerateKeys() (*GeneratedKeys, error) {
	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return nil, fmt.Errorf("could not generate authentication key")
	}
	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return nil, fmt.Errorf("could not generate encryption key")
	}
	jwtKey := securecookie.GenerateRandomKey(48)
	if jwtKey == nil {
		return nil, fmt.Errorf("could not generate JWT secret")
	}

	return &GeneratedKeys{
		AppAuthKey: base64.URLEncoding.EncodeToString(authKey),
		AppEncKey:  base64.URLEncoding.EncodeToString(encKey),
		JWTSecret:  base64.RawURLEncoding.EncodeToString(jwtKey),
	}, nil
}

func (k *GeneratedKeys) WriteEnv(w io.Writer) error {
	_, err := fmt.Fprintf(w, "APP_AUTH_KEY=%s\nAPP_ENC_KEY=%s\nJWT_SECRET=%s\n", k.AppAuthKey, k.AppEncKey, k.JWTSecret)
	return err
}

// GenerateAndWriteKeys writes a fresh key set to path for copying into .env.
func GenerateAndWriteKeys(path string) (*GeneratedKeys, error) {
	keys, err := GenerateKeys()
	if err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := keys.WriteEnv(file); err != nil {
		return nil, fmt.Errorf("failed to write keys to file %s: %w", path, err)
	}
	return keys, nil
}
