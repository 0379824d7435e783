package checkoutpesapal

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/hatua/futuretech/lib/myerrors"
	"github.com/hatua/futuretech/lib/mylog"
	"github.com/hatua/futuretech/lib/mymetrics"
	"github.com/hatua/futuretech/lib/mytime"
	"github.com/hatua/futuretech/services/pesapal"
)

const (
	referencePrefix     = "HATUA-"
	currency            = "KES"
	countryCode         = "KE"
	orderDescription    = "Hatua FutureTech Store"
	ipnNotificationType = "GET"
	defaultEmail        = "customer@hatua.store"
	defaultName         = "Valued Customer"
)

var (
	errMissingAmount = errors.New("Missing Amount")
	errInvalidAmount = errors.New("Invalid Amount")
	errMissingPhone  = errors.New("Missing Phone Number")
)

type service struct {
	cfg      Config
	endpoint pesapal.Endpoint
	gateway  pesapal.Gateway
	nower    mytime.Nower
	logger   mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(cfg Config, gateway pesapal.Gateway, nower mytime.Nower, logger mylog.Logger) (*service, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	return &service{
		cfg:      cfg,
		endpoint: pesapal.SelectEndpoint(cfg.Live, cfg.Hostname),
		gateway:  gateway,
		nower:    nower,
		logger:   logger,
	}, nil
}

// startCheckout runs authenticate, register-ipn and submit-order in that order and
// returns the url the shopper must be sent to. Every checkout authenticates from
// scratch; nothing is cached or compensated when a later step fails.
func (s *service) startCheckout(c context.Context, req CheckoutRequest) (string, error) {
	err := validate(req)
	if err != nil {
		mymetrics.IncCheckout(mymetrics.OutcomeRejected)
		return "", myerrors.NewInvalidInputError(err)
	}

	reference := s.newReference()

	s.logger.Log(c, reference, mylog.SeverityInfo, "Start checkout of %s %.2f on %s", currency, *req.Amount, s.endpoint.Hostname)

	started := time.Now()
	session, err := s.gateway.Authenticate(c, s.endpoint, pesapal.Credentials{
		ConsumerKey:    s.cfg.ConsumerKey,
		ConsumerSecret: s.cfg.ConsumerSecret,
	})
	mymetrics.ObserveGatewayCall(string(pesapal.StepAuthenticate), started, err == nil)
	if err != nil {
		return "", s.failed(c, reference, err)
	}

	started = time.Now()
	session.IPNID, err = s.gateway.RegisterIPN(c, session, pesapal.IPNRegistration{
		URL:              s.cfg.IPNURL,
		NotificationType: ipnNotificationType,
	})
	mymetrics.ObserveGatewayCall(string(pesapal.StepRegisterIPN), started, err == nil)
	if err != nil {
		return "", s.failed(c, reference, err)
	}

	started = time.Now()
	resp, err := s.gateway.SubmitOrder(c, session, pesapal.OrderRequest{
		ID:             reference,
		Currency:       currency,
		Amount:         *req.Amount,
		Description:    orderDescription,
		CallbackURL:    s.cfg.CallbackURL,
		NotificationID: session.IPNID,
		BillingAddress: pesapal.BillingAddress{
			EmailAddress: withDefault(req.Email, defaultEmail),
			FirstName:    withDefault(req.Name, defaultName),
			CountryCode:  countryCode,
			PhoneNumber:  strings.TrimSpace(req.Phone),
		},
	})
	mymetrics.ObserveGatewayCall(string(pesapal.StepSubmitOrder), started, err == nil)
	if err != nil {
		return "", s.failed(c, reference, err)
	}

	s.logger.Log(c, reference, mylog.SeverityInfo, "Start checkout completed: tracking-id %s", resp.OrderTrackingID)
	mymetrics.IncCheckout(mymetrics.OutcomeSucceeded)

	return resp.RedirectURL, nil
}

func (s *service) failed(c context.Context, reference string, err error) error {
	s.logger.Log(c, reference, mylog.SeverityError, "Payment error: %s", err)
	mymetrics.IncCheckout(mymetrics.OutcomeFailed)
	return myerrors.NewInternalError(err)
}

func (s *service) newReference() string {
	return referencePrefix + strconv.FormatInt(s.nower.Now().UnixMilli(), 10)
}

func validate(req CheckoutRequest) error {
	if req.Amount == nil || *req.Amount == 0 {
		return errMissingAmount
	}

	if *req.Amount < 0 {
		return errInvalidAmount
	}

	if strings.TrimSpace(req.Phone) == "" {
		return errMissingPhone
	}

	return nil
}

func withDefault(value string, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

