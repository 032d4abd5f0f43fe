package core

import "crypto/subtle"

// CheckCredentials compares the submitted pair with the configured one.
// This is a plaintext equality check that decides whether the management views are shown.
// It does not protect the data.
func CheckCredentials(email, password, wantEmail, wantPassword string) error {
	if wantEmail == "" || wantPassword == "" {
		return ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(wantEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPassword)) == 1
	if !emailOK || !passwordOK {
		return ErrInvalidCredentials
	}
	return nil
}
