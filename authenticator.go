package goreefcore

import (
	"crypto/tls"
)

// UserPassPair represents a username and password pair.
type UserPassPair struct {
	Username string
	Password string
}

type Authenticator interface {
	GetClientCertificate(hostPort string) (*tls.Certificate, error)
	GetCredentials(hostPort string) (string, string, error)
}

// PasswordAuthenticator applies a static username and password to every
// endpoint.
type PasswordAuthenticator struct {
	Username string
	Password string
}

var _ Authenticator = (*PasswordAuthenticator)(nil)

func (a PasswordAuthenticator) GetClientCertificate(hostPort string) (*tls.Certificate, error) {
	return nil, nil
}

func (a PasswordAuthenticator) GetCredentials(hostPort string) (string, string, error) {
	return a.Username, a.Password, nil
}
