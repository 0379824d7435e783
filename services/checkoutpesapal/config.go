package checkoutpesapal

import (
	"fmt"
	"os"
	"time"

	"github.com/hatua/futuretech/lib/myerrors"
)

const (
	environmentVarname    = "PESAPAL_ENV"
	consumerKeyVarname    = "PESAPAL_CONSUMER_KEY"
	consumerSecretVarname = "PESAPAL_CONSUMER_SECRET"
	ipnURLVarname         = "PESAPAL_IPN_URL"
	callbackURLVarname    = "PESAPAL_CALLBACK_URL"
	timeoutVarname        = "PESAPAL_TIMEOUT"
	hostnameVarname       = "PESAPAL_HOSTNAME"

	defaultIPNURL      = "https://hatuainnovationstudioke.netlify.app/ipn"
	defaultCallbackURL = "https://hatuainnovationstudioke.netlify.app/futuretech.html"
	defaultTimeout     = 10 * time.Second
)

type Config struct {
	Live           bool
	ConsumerKey    string
	ConsumerSecret string
	IPNURL         string
	CallbackURL    string
	Timeout        time.Duration
	// Hostname replaces the hostname of the selected gateway endpoint; empty in production.
	Hostname string
}

func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Live:           os.Getenv(environmentVarname) == "live",
		ConsumerKey:    os.Getenv(consumerKeyVarname),
		ConsumerSecret: os.Getenv(consumerSecretVarname),
		IPNURL:         envOrDefault(ipnURLVarname, defaultIPNURL),
		CallbackURL:    envOrDefault(callbackURLVarname, defaultCallbackURL),
		Timeout:        defaultTimeout,
		Hostname:       os.Getenv(hostnameVarname),
	}

	if value := os.Getenv(timeoutVarname); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return Config{}, myerrors.NewInvalidInputError(fmt.Errorf("invalid env-var %s: '%s'", timeoutVarname, value))
		}
		cfg.Timeout = timeout
	}

	err := cfg.validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.ConsumerKey == "" {
		return myerrors.NewInvalidInputError(fmt.Errorf("missing env-var %s", consumerKeyVarname))
	}

	if cfg.ConsumerSecret == "" {
		return myerrors.NewInvalidInputError(fmt.Errorf("missing env-var %s", consumerSecretVarname))
	}

	if cfg.IPNURL == "" || cfg.CallbackURL == "" {
		return myerrors.NewInvalidInputError(fmt.Errorf("missing ipn or callback url"))
	}

	return nil
}

func envOrDefault(varname string, defaultValue string) string {
	value := os.Getenv(varname)
	if value == "" {
		return defaultValue
	}
	return value
}
