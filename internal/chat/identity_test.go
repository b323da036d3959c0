package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolverIsOwner(t *testing.T) {
	resolver := NewResolver(Owner{
		Name:       "Kolin Simon",
		ProfileURL: "linkedin.com/in/kolin-simon",
	})

	tests := []struct {
		name   string
		sender string
		url    string
		want   bool
	}{
		{name: "exact name", sender: "Kolin Simon", want: true},
		{name: "name with decoration", sender: "Kolin Simon (He/Him)", want: true},
		{name: "case insensitive name", sender: "KOLIN SIMON", want: true},
		{name: "counterparty", sender: "Alice Chen", want: false},
		{name: "empty sender", sender: "", url: "linkedin.com/in/kolin-simon", want: false},
		{name: "url match with unrelated name", sender: "K. Simon", url: "https://linkedin.com/in/kolin-simon?trk=inbox", want: true},
		{name: "counterparty url", sender: "Alice Chen", url: "https://linkedin.com/in/alice-chen", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, resolver.IsOwner(tt.sender, tt.url))
		})
	}
}

func TestResolverEmptyOwnerNeverMatches(t *testing.T) {
	resolver := NewResolver(Owner{})
	require.False(t, resolver.IsOwner("Anyone", "https://linkedin.com/in/anyone"))
}
