// Package credentials defines the AWS credential set used to sign requests.
package credentials

// Credentials is the set of key material used to sign a request. The core
// never fetches, refreshes, or stores credentials; callers supply them on
// every call, typically from an external provider.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string

	// SessionToken is set for temporary credentials and carried on signed
	// requests via the X-Amz-Security-Token header.
	SessionToken string
}

// New returns long-lived credentials with no session token.
func New(accessKeyID, secretAccessKey string) Credentials {
	return Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
	}
}

// NewSession returns temporary credentials carrying a session token.
func NewSession(accessKeyID, secretAccessKey, sessionToken string) Credentials {
	return Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		SessionToken:    sessionToken,
	}
}

// HasSessionToken reports whether the credential set carries a session
// token.
func (c Credentials) HasSessionToken() bool {
	return len(c.SessionToken) > 0
}
