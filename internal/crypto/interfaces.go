package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer is the confidentiality layer of stored context documents.
// It knows nothing about the network, the database or the document schema:
// it turns an encoded document into an opaque token bound to its owner and
// back.
type Sealer interface {
	// Encrypt seals plaintext for userID with the primary key. Every call
	// uses a fresh random nonce, so equal inputs give different tokens.
	Encrypt(userID string, plaintext []byte) ([]byte, error)

	// Decrypt opens a token produced by Encrypt for the same userID, trying
	// the primary key first and then every previous key. Any failure
	// (malformed token, unknown version, wrong key, tampering, owner
	// mismatch or expiry) is reported as ErrDecryptionFailed.
	Decrypt(userID string, token []byte) ([]byte, error)
}
