// Package postal looks up Indian postal pincodes against the public
// api.postalpincode.in service.
package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidPincode = errors.New("invalid_pincode")
	ErrNotFound       = errors.New("pincode_not_found")
)

// Location is the city/state pair a pincode resolves to.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Client resolves a 6-digit pincode to its city and state.
type Client interface {
	Lookup(ctx context.Context, pincode string) (*Location, error)
}

type client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient builds a Client against baseURL, normally
// "https://api.postalpincode.in".
func NewClient(baseURL string, log *zap.Logger) Client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.Named("providers.postal"),
	}
}

type lookupEntry struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

func (c *client) Lookup(ctx context.Context, pincode string) (*Location, error) {
	if !ValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}

	url := fmt.Sprintf("%s/pincode/%s", c.baseURL, pincode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("pincode lookup failed", zap.String("pincode", pincode), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pincode lookup: unexpected status %d", resp.StatusCode)
	}

	var entries []lookupEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}

	if len(entries) == 0 || entries[0].Status != "Success" || len(entries[0].PostOffice) == 0 {
		return nil, ErrNotFound
	}

	po := entries[0].PostOffice[0]
	return &Location{City: po.District, State: po.State}, nil
}

// ValidPincode reports whether s is exactly six ASCII digits.
func ValidPincode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
