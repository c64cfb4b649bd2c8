package pesapal

import (
	"log"
	"net/http"
	"strings"
)

const (
	EnvironmentSandbox = "sandbox"
	EnvironmentLive    = "live"

	SandboxBaseURL = "https://cybqa.pesapal.com/pesapalv3"
	LiveBaseURL    = "https://pay.pesapal.com/v3"

	DefaultCountryCode      = "UG"
	DefaultCurrency         = "UGX"
	DefaultNotificationType = NotificationTypeGET
)

const (
	NotificationTypeGET  = "GET"
	NotificationTypePOST = "POST"
)

const (
	pathRequestToken         = "/api/Auth/RequestToken"
	pathRegisterIPN          = "/api/URLSetup/RegisterIPN"
	pathGetIPNList           = "/api/URLSetup/GetIpnList"
	pathSubmitOrderRequest   = "/api/Transactions/SubmitOrderRequest"
	pathGetTransactionStatus = "/api/Transactions/GetTransactionStatus"
	pathRefundRequest        = "/api/Transactions/RefundRequest"
)

// Config is owned by a single Client. Nothing in this package keeps
// configuration at package level, so two clients never share state.
type Config struct {
	// Environment selects the gateway host: "live" uses production, any other
	// value uses the sandbox.
	Environment    string
	ConsumerKey    string
	ConsumerSecret string

	// IPNURL is registered when RegisterIPN is called without a url.
	IPNURL string
	// CallbackURL is where PesaPal redirects the customer after payment.
	CallbackURL string

	// BaseURL overrides the host chosen by Environment (tests, proxies).
	BaseURL string

	CountryCode string
	Currency    string

	HTTPClient *http.Client
	Logger     *log.Logger
}

// BaseURLFor maps an environment name to the gateway host.
func BaseURLFor(environment string) string {
	if strings.EqualFold(strings.TrimSpace(environment), EnvironmentLive) {
		return LiveBaseURL
	}
	return SandboxBaseURL
}

func (c Config) baseURL() string {
	if v := strings.TrimSpace(c.BaseURL); v != "" {
		return strings.TrimRight(v, "/")
	}
	return BaseURLFor(c.Environment)
}

func (c Config) countryCode() string {
	if v := strings.TrimSpace(c.CountryCode); v != "" {
		return v
	}
	return DefaultCountryCode
}

func (c Config) currency() string {
	if v := strings.TrimSpace(c.Currency); v != "" {
		return v
	}
	return DefaultCurrency
}
