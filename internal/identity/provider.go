package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrProviderUnavailable is returned when the identity provider cannot be
// reached or answers with a server error.
var ErrProviderUnavailable = errors.New("identity provider unavailable")

// Profile is the subset of identity-provider profile fields used to
// provision an internal user.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	ImageURL  string `json:"imageUrl"`
}

// DisplayName joins the provider's name parts the way the UI shows them.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}

// ProviderClient fetches user profiles from the identity provider's REST
// API using a service key.
type ProviderClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewProviderClient(baseURL, apiKey string) *ProviderClient {
	return &ProviderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchProfile retrieves the profile for an external user id. Any transport
// failure or provider-side error surfaces as ErrProviderUnavailable.
func (c *ProviderClient) FetchProfile(ctx context.Context, externalID string) (*Profile, error) {
	url := fmt.Sprintf("%s/v1/users/%s", c.baseURL, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", ErrProviderUnavailable, err)
	}
	return &profile, nil
}
