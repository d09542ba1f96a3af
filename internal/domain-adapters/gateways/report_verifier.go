package gateways

import (
	"fmt"
	"os"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	"github.com/sentinelsweep/sweeper/internal/external-adapters/gpg"
)

// reportVerifier wraps the external GPG adapter to check detached
// signatures on discovered report artifacts. Verification is best-effort
// hygiene for downstream SIEM shipping: a missing signature is
// informational and a bad one is a warning, never a run failure.
type reportVerifier struct {
	verifier *gpg.Verifier
}

// NewReportVerifier creates a verifier backed by the armored public
// keyring at keyringPath.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewReportVerifier(keyringPath string) (*reportVerifier, error) {
	v := gpg.NewVerifier()
	if err := v.LoadKeyringFile(keyringPath); err != nil {
		return nil, fmt.Errorf("failed to load report keyring: %w", err)
	}
	return &reportVerifier{verifier: v}, nil
}

// VerifyReport checks the artifact's sibling "<path>.asc" signature.
// Returns (false, nil) when no signature exists.
func (r *reportVerifier) VerifyReport(artifact *entities.ReportArtifact) (bool, error) {
	sigPath := artifact.Path + ".asc"
	if _, err := os.Stat(sigPath); os.IsNotExist(err) {
		return false, nil
	}
	if err := r.verifier.VerifyDetached(artifact.Path, sigPath); err != nil {
		return true, err
	}
	artifact.Verified = true
	return true, nil
}
