package keyring

// Credential persists the session's bearer token in a Store. The session
// layer calls the On* hooks as the credential is obtained and cleared;
// the host reads it back on startup to restore a session.
type Credential struct {
	store Store
}

// NewCredential creates a credential persister backed by the given store.
func NewCredential(store Store) *Credential {
	return &Credential{store: store}
}

// Token returns the persisted bearer token, or ErrNotFound.
func (c *Credential) Token() (string, error) {
	return c.store.Get(ServiceName, KeyAccessToken)
}

// OnCredentialObtained persists a freshly issued bearer token.
func (c *Credential) OnCredentialObtained(token string) error {
	return c.store.Set(ServiceName, KeyAccessToken, token)
}

// OnCredentialCleared removes the persisted token.
func (c *Credential) OnCredentialCleared() error {
	return c.store.Delete(ServiceName, KeyAccessToken)
}
