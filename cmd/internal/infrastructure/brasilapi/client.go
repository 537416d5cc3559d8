package brasilapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://brasilapi.com.br/api/cnpj/v1"

// LookupError carries the upstream status so the API boundary can
// surface it to the caller.
type LookupError struct {
	StatusCode int
	Detail     string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("registry lookup failed with status %d: %s", e.StatusCode, e.Detail)
}

type Client struct {
	httpClient *resty.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

func NewClientWithBaseURL(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Mozilla/5.0")

	return &Client{httpClient: client}
}

// GetByCNPJ fetches the registry record for a normalized 14-digit CNPJ.
// Non-2xx responses come back as *LookupError; transport failures as
// the underlying error.
func (c *Client) GetByCNPJ(ctx context.Context, cnpj string) (*CompanyResponse, error) {
	var company CompanyResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&company).
		Get("/" + cnpj)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, &LookupError{
			StatusCode: resp.StatusCode(),
			Detail:     string(resp.Body()),
		}
	}
	return &company, nil
}
