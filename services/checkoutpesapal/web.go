package checkoutpesapal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hatua/futuretech/lib/mycontext"
	"github.com/hatua/futuretech/lib/myerrors"
	"github.com/hatua/futuretech/lib/myhttp"
	"github.com/hatua/futuretech/lib/mylog"
	"github.com/hatua/futuretech/lib/mytime"
	"github.com/hatua/futuretech/services/cart"
	"github.com/hatua/futuretech/services/pesapal"
)

const (
	cartCustomerName  = "FutureTech Client"
	cartCustomerEmail = "client@hatua.tech"
)

var (
	errMethodNotAllowed = errors.New("Method Not Allowed")
	errInvalidJSON      = errors.New("Invalid JSON Data")
	errEmptyCart        = errors.New("Cart is empty")
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, gateway pesapal.Gateway, nower mytime.Nower) (*webService, error) {
	logger := mylog.New("checkoutpesapal")
	s, err := newService(cfg, gateway, nower, logger)
	if err != nil {
		return nil, err
	}

	return &webService{
		logger:  logger,
		service: s,
	}, nil
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Method is checked in the handler: other methods get a plain-text 405
	router.HandleFunc("/pay", s.payPage())
	router.HandleFunc("/.netlify/functions/pay", s.payPage())

	router.HandleFunc("/cart/checkout", s.cartCheckoutPage()).Methods("POST")

	return nil
}

// payPage starts a payment and returns the url of the gateway payment page
func (s *webService) payPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if r.Method != http.MethodPost {
			err := myerrors.NewMethodNotAllowedError(errMethodNotAllowed)
			responseWriter.WritePlain(c, w, myerrors.GetHTTPStatus(err), myerrors.GetMessage(err))
			return
		}

		req, err := decodeCheckoutRequest(r.Body)
		if err != nil {
			s.logger.Log(c, "", mylog.SeverityWarn, "Error parsing pay request: %s", err)
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(errInvalidJSON))
			return
		}

		redirectURL, err := s.service.startCheckout(c, req)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, PaymentResult{
			RedirectURL: redirectURL,
		})
	}
}

// decodeCheckoutRequest requires the body to hold exactly one json value
func decodeCheckoutRequest(body io.Reader) (CheckoutRequest, error) {
	req := CheckoutRequest{}
	decoder := json.NewDecoder(body)
	err := decoder.Decode(&req)
	if err != nil {
		return req, err
	}

	err = decoder.Decode(&struct{}{})
	if err != io.EOF {
		return req, fmt.Errorf("unexpected data after json body")
	}

	return req, nil
}

// cartCheckoutPage pays the contents of the posted cart and redirects to the gateway payment page
func (s *webService) cartCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := cart.NewFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		shoppingCart, err := form.Cart()
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		if shoppingCart.IsEmpty() {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(errEmptyCart))
			return
		}

		if strings.TrimSpace(form.Phone) == "" {
			responseWriter.WriteError(c, w, myerrors.NewInvalidInputError(errMissingPhone))
			return
		}

		names := []string{}
		for _, item := range shoppingCart.Items() {
			names = append(names, item.Name)
		}
		s.logger.Log(c, "", mylog.SeverityInfo, "Checkout cart with %d items: %s", shoppingCart.Count(), strings.Join(names, ", "))

		amount := float64(shoppingCart.Total())
		redirectURL, err := s.service.startCheckout(c, CheckoutRequest{
			Amount: &amount,
			Name:   cartCustomerName,
			Email:  cartCustomerEmail,
			Phone:  form.Phone,
		})
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}
