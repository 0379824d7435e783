package pesapal

import (
	"fmt"
)

type Step string

const (
	StepAuthenticate Step = "authenticate"
	StepRegisterIPN  Step = "register-ipn"
	StepSubmitOrder  Step = "submit-order"
)

type ErrorKind string

const (
	// ErrorKindTransport: the gateway could not be reached or did not answer in time.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindAuth: the token endpoint refused the credentials.
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindBusiness: the gateway reported an explicit error.
	ErrorKindBusiness ErrorKind = "business"
	// ErrorKindContract: the response misses a field the contract promises.
	ErrorKindContract ErrorKind = "contract"
)

// GatewayError describes why a step of the payment sequence failed.
type GatewayError struct {
	Step       Step
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	switch e.Kind {
	case ErrorKindTransport:
		return fmt.Sprintf("Connection error (%s): %s", e.Step, e.Err)
	case ErrorKindAuth:
		return fmt.Sprintf("Auth Failed: status %d: %s", e.StatusCode, e.Body)
	case ErrorKindBusiness:
		return fmt.Sprintf("%s Error: %s", stepLabels[e.Step], e.Message)
	default:
		return fmt.Sprintf("Invalid response from gateway (%s): %s: %s", e.Step, e.Message, e.Body)
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

var stepLabels = map[Step]string{
	StepAuthenticate: "Auth",
	StepRegisterIPN:  "IPN",
	StepSubmitOrder:  "Order",
}

func transportError(step Step, err error) *GatewayError {
	return &GatewayError{Step: step, Kind: ErrorKindTransport, Err: err}
}

func contractError(step Step, status int, msg string, body []byte) *GatewayError {
	return &GatewayError{Step: step, Kind: ErrorKindContract, StatusCode: status, Message: msg, Body: string(body)}
}

func businessError(step Step, status int, apiErr *apiError, body []byte) *GatewayError {
	return &GatewayError{Step: step, Kind: ErrorKindBusiness, StatusCode: status, Message: apiErr.text(), Body: string(body)}
}
