package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"blogzone-cli/auth"
	"blogzone-cli/types"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second
const slowReqTimeout = 5 * time.Minute

type Api struct{}

var apiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if os.Getenv("BLOGZONE_API_HOST") != "" {
		apiHost = os.Getenv("BLOGZONE_API_HOST")
	} else if os.Getenv("BLOGZONE_ENV") == "development" {
		apiHost = "http://localhost:3001"
	} else {
		apiHost = "https://the-blog-zone-server.vercel.app"
	}
}

func GetApiHost() string {
	return apiHost
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and adds the bearer token
// header when a session is loaded
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

// post collections can get large; listing endpoints get a longer timeout
var authenticatedSlowClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: slowReqTimeout,
}
