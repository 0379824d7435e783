package pesapal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hatua/futuretech/lib/myhttpclient"
)

//go:generate mockgen -source=client.go -package pesapal -destination gateway_mock.go Gateway
type Gateway interface {
	Authenticate(c context.Context, endpoint Endpoint, credentials Credentials) (Session, error)
	RegisterIPN(c context.Context, session Session, registration IPNRegistration) (string, error)
	SubmitOrder(c context.Context, session Session, order OrderRequest) (OrderResponse, error)
}

type client struct {
	sender myhttpclient.HTTPSender
}

func NewClient(sender myhttpclient.HTTPSender) *client {
	return &client{
		sender: sender,
	}
}

// Authenticate exchanges the consumer credentials for a bearer token that is
// bound to the given endpoint.
func (cl client) Authenticate(c context.Context, endpoint Endpoint, credentials Credentials) (Session, error) {
	requestBody, err := json.Marshal(tokenRequest{
		ConsumerKey:    credentials.ConsumerKey,
		ConsumerSecret: credentials.ConsumerSecret,
	})
	if err != nil {
		return Session{}, fmt.Errorf("error marshalling token request: %s", err)
	}

	status, respBody, err := cl.sender.Send(c, http.MethodPost, endpoint.URL(requestTokenPath), "", requestBody)
	if err != nil {
		return Session{}, transportError(StepAuthenticate, err)
	}

	if !isSuccess(status) {
		return Session{}, &GatewayError{Step: StepAuthenticate, Kind: ErrorKindAuth, StatusCode: status, Body: string(respBody)}
	}

	resp := tokenResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return Session{}, contractError(StepAuthenticate, status, "unparseable response", respBody)
	}

	if resp.Error.present() {
		return Session{}, &GatewayError{Step: StepAuthenticate, Kind: ErrorKindAuth, StatusCode: status, Message: resp.Error.text(), Body: string(respBody)}
	}

	if resp.Token == "" {
		return Session{}, contractError(StepAuthenticate, status, "missing token", respBody)
	}

	return Session{
		Endpoint:    endpoint,
		AccessToken: resp.Token,
	}, nil
}

// RegisterIPN registers the url the gateway notifies on payment completion and
// returns the identifier to pass along with the order.
func (cl client) RegisterIPN(c context.Context, session Session, registration IPNRegistration) (string, error) {
	if session.AccessToken == "" {
		return "", fmt.Errorf("cannot register ipn without access token")
	}

	requestBody, err := json.Marshal(registration)
	if err != nil {
		return "", fmt.Errorf("error marshalling ipn registration: %s", err)
	}

	status, respBody, err := cl.sender.Send(c, http.MethodPost, session.Endpoint.URL(registerIPNPath), session.AccessToken, requestBody)
	if err != nil {
		return "", transportError(StepRegisterIPN, err)
	}

	resp := ipnResponse{}
	err = decode(StepRegisterIPN, status, respBody, &resp, func() *apiError { return resp.Error })
	if err != nil {
		return "", err
	}

	if resp.IPNID == "" {
		return "", contractError(StepRegisterIPN, status, "missing ipn_id", respBody)
	}

	return resp.IPNID, nil
}

// SubmitOrder submits the order; the gateway responds with the page the shopper
// must visit to complete the payment.
func (cl client) SubmitOrder(c context.Context, session Session, order OrderRequest) (OrderResponse, error) {
	if session.AccessToken == "" {
		return OrderResponse{}, fmt.Errorf("cannot submit order without access token")
	}

	requestBody, err := json.Marshal(order)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("error marshalling order: %s", err)
	}

	status, respBody, err := cl.sender.Send(c, http.MethodPost, session.Endpoint.URL(submitOrderPath), session.AccessToken, requestBody)
	if err != nil {
		return OrderResponse{}, transportError(StepSubmitOrder, err)
	}

	resp := orderResponse{}
	err = decode(StepSubmitOrder, status, respBody, &resp, func() *apiError { return resp.Error })
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.RedirectURL == "" {
		return OrderResponse{}, contractError(StepSubmitOrder, status, "missing redirect_url", respBody)
	}

	return resp.OrderResponse, nil
}

// decode gives an explicit gateway error precedence over the http status.
func decode(step Step, status int, body []byte, target any, reportedError func() *apiError) error {
	err := json.Unmarshal(body, target)
	if err != nil {
		if !isSuccess(status) {
			return contractError(step, status, fmt.Sprintf("unexpected status %d", status), body)
		}
		return contractError(step, status, "unparseable response", body)
	}

	if apiErr := reportedError(); apiErr.present() {
		return businessError(step, status, apiErr, body)
	}

	if !isSuccess(status) {
		return contractError(step, status, fmt.Sprintf("unexpected status %d", status), body)
	}

	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
