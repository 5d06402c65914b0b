package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Options configure the provider API client.
type Options struct {
	// BaseURL is the provider API base URL, without a trailing slash.
	BaseURL string
	// APIKey authenticates requests against the provider.
	APIKey string
	// SenderName is the display name messages are sent as.
	SenderName string
	// SenderAddress is the from address.
	SenderAddress string
	// Timeout bounds a single delivery request.
	Timeout time.Duration
}

type address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type message struct {
	Sender      address   `json:"sender"`
	To          []address `json:"to"`
	Subject     string    `json:"subject"`
	TextContent string    `json:"textContent,omitempty"`
	HTMLContent string    `json:"htmlContent,omitempty"`
}

// Client delivers emails through the provider's transactional HTTP API.
type Client struct {
	options Options
	client  *http.Client
}

// NewClient creates a provider API mailer from the given options.
func NewClient(options Options) *Client {
	return &Client{
		options: options,
		client:  &http.Client{Timeout: options.Timeout},
	}
}

// Send delivers a single email. Any non-2xx provider response is returned as
// an error so the caller can decide whether to retry.
func (c *Client) Send(ctx context.Context, email Email) error {
	msg := message{
		Sender: address{
			Name:  c.options.SenderName,
			Email: c.options.SenderAddress,
		},
		To:          []address{{Name: email.ToName, Email: email.ToAddress}},
		Subject:     email.Subject,
		TextContent: email.Text,
		HTMLContent: email.HTML,
	}
	reqData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.options.BaseURL+"/v3/smtp/email",
		bytes.NewReader(reqData))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Add("api-key", c.options.APIKey)
	req.Header.Add("content-type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		errBody, err := io.ReadAll(res.Body)
		if err != nil {
			errBody = []byte("unable to read body")
		}

		return fmt.Errorf("got status code %d when sending email: %s", res.StatusCode, string(errBody))
	}

	return nil
}
