package chat

import "strings"

// Owner identifies the dashboard's configured user. It is supplied once
// at startup and never derived from the data.
type Owner struct {
	Name       string
	ProfileURL string
}

// Resolver decides whether a message record was authored by the owner.
//
// Matching is deliberately substring-based rather than exact: exported
// display names carry suffixes and decorations, and profile URLs appear
// with and without tracking parameters. The trade-off is a documented
// false-positive risk: a counterparty whose name happens to contain the
// owner's name is misattributed.
type Resolver struct {
	name       string
	profileURL string
}

// NewResolver builds a Resolver for the given owner identity.
func NewResolver(owner Owner) *Resolver {
	return &Resolver{
		name:       strings.ToLower(strings.TrimSpace(owner.Name)),
		profileURL: strings.ToLower(strings.TrimSpace(owner.ProfileURL)),
	}
}

// IsOwner reports whether a record with the given sender name and sender
// URL was authored by the owner. A record with no sender name is never
// the owner's. Absent inputs degrade to false, never an error.
func (r *Resolver) IsOwner(name, url string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if r.name != "" && strings.Contains(strings.ToLower(name), r.name) {
		return true
	}
	if url != "" && r.profileURL != "" && strings.Contains(strings.ToLower(url), r.profileURL) {
		return true
	}
	return false
}
