package recoemail

import "errors"

// Validation messages. They are part of the client contract and are
// returned verbatim by the HTTP API.
const (
	MsgInvalidProtocol       = "Protocol must be either http or https"
	MsgInvalidHostname       = "Hostname cannot be null or an empty string"
	MsgInvalidPort           = "Port must be in the valid range 0 - 65535"
	MsgInvalidChannelID      = "ChannelId cannot be null"
	MsgInvalidEmailType      = "EmailType cannot be null"
	MsgInvalidPlacementID    = "PlacementId cannot be null"
	MsgInvalidPosition       = "Position cannot be null or negative"
	MsgInvalidProductNumbers = "Product numbers list cannot be null or empty"
	MsgInvalidStoreNumbers   = "Store numbers list cannot be null or empty"
	MsgInvalidCustomerEmail  = "Customer email cannot be null or an empty string"
	MsgInvalidBaseURL        = "Email recommendation base URL cannot be null or an empty string"
)

// InvalidParameterError reports a missing or out-of-range input.
type InvalidParameterError struct {
	Message string
	Cause   error
}

func (e *InvalidParameterError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *InvalidParameterError) Unwrap() error { return e.Cause }

func newInvalidParameter(msg string) *InvalidParameterError {
	return &InvalidParameterError{Message: msg}
}

// WrapInvalidParameter builds an InvalidParameterError that keeps the
// underlying cause, e.g. an enum that failed to parse.
func WrapInvalidParameter(msg string, cause error) *InvalidParameterError {
	return &InvalidParameterError{Message: msg, Cause: cause}
}

// IsInvalidParameter reports whether err is, or wraps, an InvalidParameterError.
func IsInvalidParameter(err error) (*InvalidParameterError, bool) {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) {
		return ipe, true
	}
	return nil, false
}
