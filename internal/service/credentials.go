package service

import "context"

// acceptAllVerifier accepts any password for any known account. The API runs
// in a demonstration mode where possession of a registered email is the only
// credential; swapping in a real verifier is a construction-time change in
// NewServices.
type acceptAllVerifier struct{}

// NewAcceptAllVerifier returns the CredentialVerifier used in demonstration
// mode.
func NewAcceptAllVerifier() CredentialVerifier {
	return acceptAllVerifier{}
}

// Verify implements CredentialVerifier and always accepts.
func (acceptAllVerifier) Verify(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}
