package models

// Identity is the verified caller of a request as reported by the external
// identity provider. It lives for one request and is never persisted.
type Identity struct {
	// ID is the opaque subject identifier assigned by the identity provider.
	// It becomes the user_id of every record the caller creates.
	ID string `json:"id"`

	// Email is the e-mail address known to the provider, if any.
	Email string `json:"email,omitempty"`

	// Role is the provider-side role of the caller (e.g. "authenticated").
	Role string `json:"role,omitempty"`

	// Claims holds the claims decoded from the bearer token when the token is
	// a JWT. It is nil for opaque tokens.
	Claims map[string]any `json:"-"`
}

// IsZero reports whether the identity carries no subject.
func (i Identity) IsZero() bool {
	return i.ID == ""
}
