package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"toolbox/internal/numeric"
)

// DefaultEndpoint is the public exchange-rate conversion endpoint.
const DefaultEndpoint = "https://api.exchangerate.host/convert"

// Request asks for amount of From expressed in To. Amount is kept as typed.
type Request struct {
	From   Code
	To     Code
	Amount string
}

// Result is a successful conversion.
type Result struct {
	Result float64 `json:"result"`
	Rate   float64 `json:"rate"`
}

// Rater converts amounts between currencies.
type Rater interface {
	Convert(ctx context.Context, req Request) (Result, error)
}

// Client calls the exchange-rate endpoint, one GET per conversion.
type Client struct {
	Endpoint  string
	AccessKey string
	HTTP      *http.Client
}

func NewClient(endpoint, accessKey string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Endpoint: endpoint, AccessKey: accessKey, HTTP: httpClient}
}

var _ Rater = (*Client)(nil)

type convertResponse struct {
	Success *bool    `json:"success"`
	Result  *float64 `json:"result"`
	Rate    float64  `json:"rate"`
	Error   *struct {
		Info string `json:"info"`
	} `json:"error"`
}

// ParseAmount returns the positive finite value of amount.
func ParseAmount(amount string) (float64, error) {
	v := numeric.Parse(amount)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &Error{Kind: KindValidation, Message: msgInvalidAmount, Err: fmt.Errorf("amount %q", amount)}
	}
	return v, nil
}

// Convert validates the amount locally, then issues the request. Every
// failure is an *Error carrying the message to show.
func (c *Client) Convert(ctx context.Context, req Request) (Result, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return Result{}, err
	}

	u, err := c.url(req.From, req.To, amount)
	if err != nil {
		return Result{}, unexpected(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Result{}, unexpected(err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return Result{}, unexpected(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return Result{}, &Error{
			Kind:    KindTransport,
			Message: msgFetchFailed,
			Err:     fmt.Errorf("exchange rate get: %s", resp.Status),
		}
	}

	var body convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, unexpected(err)
	}

	if body.Success != nil && !*body.Success {
		msg := msgConversion
		if body.Error != nil && body.Error.Info != "" {
			msg = body.Error.Info
		}
		return Result{}, &Error{Kind: KindBusiness, Message: msg}
	}

	if body.Result == nil {
		return Result{}, &Error{Kind: KindBusiness, Message: msgConversion, Err: fmt.Errorf("response has no result")}
	}

	return Result{Result: *body.Result, Rate: body.Rate}, nil
}

func (c *Client) url(from, to Code, amount float64) (string, error) {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("from", string(from))
	q.Set("to", string(to))
	q.Set("amount", numeric.Format(amount))
	if c.AccessKey != "" {
		q.Set("access_key", c.AccessKey)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
