package store

import "github.com/prithvi1320/StyleSphere/models"

// CredentialVerifier abstracts how a presented password is checked against a
// stored credential, so a salted-hash scheme can replace the demo plaintext
// comparison without touching the store's call contract.
type CredentialVerifier interface {
	// Verify checks presented against stored. stored is the raw credential
	// table entry for the account, or "" when no explicit entry exists, in
	// which case the role default applies.
	Verify(stored string, role models.Role, presented string) bool
	// Seal prepares a new password for storage in the credential table.
	Seal(password string) string
}

// PlaintextVerifier compares passwords verbatim. Demo-grade only; seeded
// accounts without an explicit table entry accept their role's default
// password.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored string, role models.Role, presented string) bool {
	if stored == "" {
		return presented == roleDefaultPassword(role)
	}
	return stored == presented
}

func (PlaintextVerifier) Seal(password string) string { return password }

func roleDefaultPassword(role models.Role) string {
	if role == models.RoleAdmin {
		return defaultAdminPassword
	}
	return defaultCustomerPassword
}
