package pesapal

// Endpoint is a hostname plus the api path prefix that belongs to it.
// Tokens are only valid on the endpoint that issued them.
type Endpoint struct {
	Hostname string
	BasePath string
}

func (ep Endpoint) URL(path string) string {
	return ep.Hostname + ep.BasePath + path
}

const (
	requestTokenPath = "/Auth/RequestToken"
	registerIPNPath  = "/URLSetup/RegisterIPN"
	submitOrderPath  = "/Transactions/SubmitOrderRequest"
)

var (
	LiveEndpoint = Endpoint{
		Hostname: "https://pay.pesapal.com",
		BasePath: "/v3/api",
	}
	SandboxEndpoint = Endpoint{
		Hostname: "https://cybqa.pesapal.com",
		BasePath: "/pesapalv3/api",
	}
)

// SelectEndpoint picks the live or sandbox pair. A non-empty hostname replaces
// the hostname of the selected pair and keeps its base path.
func SelectEndpoint(live bool, hostname string) Endpoint {
	ep := SandboxEndpoint
	if live {
		ep = LiveEndpoint
	}
	if hostname != "" {
		ep.Hostname = hostname
	}
	return ep
}
