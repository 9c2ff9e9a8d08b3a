package awsecs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/ssocreds"
	"github.com/aws/smithy-go"
)

// CredentialError indicates the profile's credentials are missing or expired.
// Its message carries the steps needed to re-authenticate.
type CredentialError struct {
	// Profile is the named AWS profile the credentials were resolved for.
	Profile string
	// Reason is the underlying SDK error.
	Reason error
}

// Error returns a user-friendly error message with actionable guidance.
func (e *CredentialError) Error() string {
	return fmt.Sprintf(`AWS credentials could not be retrieved for profile %q

This usually means your session has expired or is not configured.

To login (with a SSO session):
  1. If you haven't configured SSO yet:
     $ aws configure sso
  2. If your session expired, renew it:
     $ aws sso login --profile %s
     or
     $ aws sso login --sso-session <your-sso-session-name>`, e.Profile, e.Profile)
}

// Unwrap returns the underlying error.
func (e *CredentialError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *CredentialError) Is(target error) bool {
	_, ok := target.(*CredentialError)
	return ok
}

// RequestError indicates the ECS API rejected a call for any reason other
// than credentials: missing permissions, unknown cluster, network failure.
type RequestError struct {
	// Op names the API operation, e.g. "ListServices".
	Op string
	// Reason is the underlying SDK error.
	Reason error
}

// Error returns the operation and cause.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Reason)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *RequestError) Is(target error) bool {
	_, ok := target.(*RequestError)
	return ok
}

// credentialErrorCodes are API error codes that mean the caller's identity
// was rejected rather than the request itself.
var credentialErrorCodes = map[string]struct{}{
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"UnrecognizedClientException": {},
	"InvalidClientTokenId":        {},
	"InvalidSignatureException":   {},
}

// credentialErrorKeywords are matched against the message when no typed
// error is found in the chain.
var credentialErrorKeywords = []string{
	"failed to retrieve credentials",
	"failed to refresh cached credentials",
	"failed to get shared config profile",
	"token has expired",
	"sso session has expired",
	"no ec2 imds role found",
}

// Classify wraps err as a *CredentialError or *RequestError. A nil error
// yields nil.
func Classify(op, profile string, err error) error {
	if err == nil {
		return nil
	}

	if IsCredentialFailure(err) {
		return &CredentialError{Profile: profile, Reason: err}
	}

	return &RequestError{Op: op, Reason: err}
}

// IsCredentialFailure reports whether err is caused by absent or expired
// credentials.
func IsCredentialFailure(err error) bool {
	if err == nil {
		return false
	}

	var tokenErr *ssocreds.InvalidTokenError
	if errors.As(err, &tokenErr) {
		return true
	}

	var profileErr config.SharedConfigProfileNotExistError
	if errors.As(err, &profileErr) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if _, ok := credentialErrorCodes[apiErr.ErrorCode()]; ok {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, keyword := range credentialErrorKeywords {
		if strings.Contains(msg, keyword) {
			return true
		}
	}

	return false
}
