package pesapal

type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
}

// Session lives for a single checkout and is never shared between checkouts.
type Session struct {
	Endpoint    Endpoint
	AccessToken string
	IPNID       string
}

type IPNRegistration struct {
	URL              string `json:"url"`
	NotificationType string `json:"ipn_notification_type"`
}

type OrderRequest struct {
	ID             string         `json:"id"`
	Currency       string         `json:"currency"`
	Amount         float64        `json:"amount"`
	Description    string         `json:"description"`
	CallbackURL    string         `json:"callback_url"`
	NotificationID string         `json:"notification_id"`
	BillingAddress BillingAddress `json:"billing_address"`
}

type BillingAddress struct {
	EmailAddress string `json:"email_address"`
	FirstName    string `json:"first_name"`
	CountryCode  string `json:"country_code"`
	PhoneNumber  string `json:"phone_number"`
}

type OrderResponse struct {
	OrderTrackingID   string `json:"order_tracking_id"`
	MerchantReference string `json:"merchant_reference"`
	RedirectURL       string `json:"redirect_url"`
}

type tokenRequest struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

type tokenResponse struct {
	Token      string    `json:"token"`
	ExpiryDate string    `json:"expiryDate"`
	Error      *apiError `json:"error"`
}

type ipnResponse struct {
	IPNID string    `json:"ipn_id"`
	URL   string    `json:"url"`
	Error *apiError `json:"error"`
}

type orderResponse struct {
	OrderResponse
	Error *apiError `json:"error"`
}

// apiError is how the gateway reports a business failure inside an otherwise
// well-formed response. Successful responses may carry it with all fields empty.
type apiError struct {
	ErrorType string `json:"error_type"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

func (e *apiError) present() bool {
	return e != nil && (e.ErrorType != "" || e.Code != "" || e.Message != "")
}

func (e *apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return e.ErrorType
}
