// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier checks detached armored signatures against a local keyring.
// Uses ProtonMail's go-crypto, a maintained, modern fork of
// golang.org/x/crypto/openpgp. This is in external-adapters to isolate
// the external dependency.
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates an empty verifier. Load a keyring before verifying.
func NewVerifier() *Verifier {
	return &Verifier{keyring: make(openpgp.EntityList, 0)}
}

// LoadKeyringFile imports armored public keys from a local file.
func (v *Verifier) LoadKeyringFile(path string) error {
	//nolint:gosec // G304: keyring path comes from orchestrator settings
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	keys, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		return fmt.Errorf("failed to parse keyring: %w", err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("keyring contains no keys")
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// VerifyDetached checks that sigPath is a valid armored detached signature
// over filePath by one of the loaded keys.
func (v *Verifier) VerifyDetached(filePath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no keys loaded")
	}

	//nolint:gosec // G304: filePath is a discovered report artifact
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer file.Close()

	//nolint:gosec // G304: sigPath is a sibling of the report artifact
	sig, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer sig.Close()

	if _, err := openpgp.CheckArmoredDetachedSignature(v.keyring, file, sig, nil); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}
