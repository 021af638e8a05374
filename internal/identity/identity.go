// Package identity abstracts the external identity provider. The salon does
// not manage passwords or sessions; it only verifies bearer tokens issued by
// the provider and maps the subject to an internal profile.
package identity

import "context"

type Identity struct {
	SubjectID string
	Email     string
	Name      string
}

// Verifier checks a raw bearer token. Implementations return an error for
// anything that is not a currently valid token.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
