package models

// Identity is the stable identity of an authenticated user, as reported by the
// federated auth provider. DisplayName may be empty for providers that only
// expose an email.
type Identity struct {
	UserId      string
	Email       string
	DisplayName string
}

// Name returns the best human-readable label for the identity, used when
// stamping createdByName/updatedByName on records.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Email
}

type Credentials struct {
	ActorIdentity Identity
}
