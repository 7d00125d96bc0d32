// Package identity holds the signed-in user as reported by the identity
// provider.
package identity

// User describes the currently signed-in user. Attributes carries every claim
// the provider returned, including the ones promoted to named fields.
type User struct {
	Username      string
	Subject       string
	Email         string
	EmailVerified bool
	PhoneNumber   string
	Attributes    map[string]any
}
