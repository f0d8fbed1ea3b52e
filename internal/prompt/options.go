package prompt

// CredentialKind enumerates the credential forms a caller is willing to
// accept. Kinds combine as a bitmask.
type CredentialKind uint8

const (
	// KindUserPass is a plain username/password pair
	KindUserPass CredentialKind = 1 << iota
	// KindDomainUser is a domain-qualified username/password pair
	KindDomainUser
	// KindCertificate is a client-certificate credential
	KindCertificate
)

// Has reports whether kind k includes all kinds in other
func (k CredentialKind) Has(other CredentialKind) bool {
	return k&other == other
}

// Options configures which credential kinds are acceptable and how
// intrusively the UI behaves. The interactive flow itself is not altered
// by these settings; they are carried for the layers that gate on them.
type Options struct {
	// AllowedKinds restricts the acceptable credential kinds.
	// Zero means KindUserPass.
	AllowedKinds CredentialKind

	// HideRememberOption suppresses "remember me" style affordances in
	// surfaces that offer them.
	HideRememberOption bool
}
