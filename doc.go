// Package awscore builds, signs, and dispatches HTTP requests to
// AWS-style APIs. It implements the Signature Version 4 signing scheme
// over an unsigned request model and routes responses through
// caller-supplied decoders.
//
// The package owns no credentials, imposes no timeouts, and performs no
// retries: credentials, deadlines, and retry policy all belong to the
// caller. A service.Service descriptor and a credentials.Credentials
// value are passed on every call, so one Client may serve any number of
// services and identities concurrently.
package awscore
