package auth

import (
	"blogzone-cli/types"
)

// apiClient is injected from main to avoid a circular dependency between the
// auth and api packages.
var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}
