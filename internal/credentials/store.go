// Package credentials persists the exchange key pair of the command line client.
//
// The encryption key is derived from a passphrase compiled into the binary.
// Anyone holding the binary can decrypt the stored value: this hides the
// secret from casual inspection of the storage, it does not protect it from
// an attacker with access to the code.
package credentials

//go:generate mockgen -source=store.go -destination=store_mock.go -package=credentials

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/scrypt"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/repositories"
)

// StorageKey is the key the encrypted credentials are stored under.
const StorageKey = "mexc_api_credentials"

const (
	appPassphrase = "mexc-withdrawal-app-key-2024"
	appSalt       = "gw-batch-withdrawal/credentials/v1"

	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// Storage is a string key/value store.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)  // Returns the value or repositories.ErrKeyNotFound
	Set(ctx context.Context, key, value string) error     // Stores the value
	Delete(ctx context.Context, key string) error         // Removes the value, missing keys are ignored
	Exists(ctx context.Context, key string) (bool, error) // Reports presence of the key
}

// Store encrypts credentials before handing them to the storage.
type Store struct {
	storage Storage

	once   sync.Once
	key    []byte
	keyErr error
}

// NewStore creates a new Store.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Save encrypts and stores creds, replacing any previous pair.
func (s *Store) Save(ctx context.Context, creds models.Credentials) error {
	if creds.IsEmpty() {
		return apperrors.New(apperrors.ErrValidation, "API key and secret are required")
	}

	plaintext, err := json.Marshal(creds)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "encode credentials", err)
	}
	defer clear(plaintext)

	sealed, err := s.seal(plaintext)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "encrypt credentials", err)
	}

	if err := s.storage.Set(ctx, StorageKey, sealed); err != nil {
		logger.Log.Errorw("failed to save credentials", "error", err)
		return apperrors.Wrap(apperrors.ErrStorage, "save credentials", err)
	}

	logger.Log.Infow("credentials saved", "api_key", creds.MaskedKey())
	return nil
}

// Load returns the stored credentials. Anything that prevents reading them
// back is logged and reported as absence.
func (s *Store) Load(ctx context.Context) (*models.Credentials, bool) {
	sealed, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, repositories.ErrKeyNotFound) {
			logger.Log.Warnw("failed to read stored credentials", "error", err)
		}
		return nil, false
	}

	plaintext, err := s.open(sealed)
	if err != nil {
		logger.Log.Warnw("failed to decrypt stored credentials", "error", err)
		return nil, false
	}
	defer clear(plaintext)

	var creds models.Credentials
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		logger.Log.Warnw("failed to decode stored credentials", "error", err)
		return nil, false
	}
	if creds.IsEmpty() {
		logger.Log.Warnw("stored credentials are incomplete")
		return nil, false
	}
	return &creds, true
}

// Clear removes the stored credentials. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		logger.Log.Errorw("failed to clear credentials", "error", err)
		return apperrors.Wrap(apperrors.ErrStorage, "clear credentials", err)
	}
	return nil
}

// HasCredentials reports whether something is stored, without decrypting it.
func (s *Store) HasCredentials(ctx context.Context) bool {
	ok, err := s.storage.Exists(ctx, StorageKey)
	if err != nil {
		logger.Log.Warnw("failed to check stored credentials", "error", err)
		return false
	}
	return ok
}

func (s *Store) gcm() (cipher.AEAD, error) {
	s.once.Do(func() {
		s.key, s.keyErr = scrypt.Key([]byte(appPassphrase), []byte(appSalt), scryptN, scryptR, scryptP, scryptKeyLen)
	})
	if s.keyErr != nil {
		return nil, fmt.Errorf("failed to derive key: %w", s.keyErr)
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// seal returns base64(nonce || ciphertext).
func (s *Store) seal(plaintext []byte) (string, error) {
	aesGCM, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aesGCM.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Store) open(encoded string) ([]byte, error) {
	aesGCM, err := s.gcm()
	if err != nil {
		return nil, err
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	if len(sealed) < aesGCM.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := sealed[:aesGCM.NonceSize()], sealed[aesGCM.NonceSize():]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("ciphertext does not authenticate")
	}
	return plaintext, nil
}
