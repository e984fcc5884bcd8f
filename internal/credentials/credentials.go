// Package credentials holds the Habitica API user ID and token pair.
package credentials

// Credentials is an immutable user ID / API token pair.
// Values are stored exactly as given.
type Credentials struct {
	userID   string
	apiToken string
}

// New creates Credentials from a user ID and API token.
func New(userID, apiToken string) Credentials {
	return Credentials{userID: userID, apiToken: apiToken}
}

// UserID returns the Habitica user ID.
func (c Credentials) UserID() string { return c.userID }

// APIToken returns the Habitica API token.
func (c Credentials) APIToken() string { return c.apiToken }

// String implements fmt.Stringer. The token is redacted.
func (c Credentials) String() string {
	if c.apiToken == "" {
		return "user=" + c.userID + " token=(empty)"
	}
	return "user=" + c.userID + " token=(redacted)"
}
