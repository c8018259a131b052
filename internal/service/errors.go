package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the email is unknown or
	// the password is rejected. Both cases collapse into one error so the API
	// does not leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single error returned for every token
	// verification failure: bad signature, wrong issuer or audience, expired,
	// or malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrVersionIsNotSpecified is returned when the binary carries no version
	// string at all. Untagged builds still stamp "N/A".
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
