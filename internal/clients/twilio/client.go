package twilio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/johnschneiider/Noxus/internal/observability"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	// ErrNotConfigured means the account SID or auth token is missing.
	ErrNotConfigured = errors.New("twilio is not configured")
	// ErrInsecureWebhookURL means the callback URL is not public HTTPS.
	// Twilio refuses plain-HTTP and localhost callback targets.
	ErrInsecureWebhookURL = errors.New("webhook URL must use https")
	// ErrCallRejected wraps a provider-side refusal to place the call.
	ErrCallRejected = errors.New("twilio rejected the call")
)

// Client wraps the Twilio REST API for placing outbound calls.
type Client struct {
	phoneNumber string
	rest        *twilio.RestClient
	logger      *observability.Logger
}

func NewClient(accountSID, authToken, phoneNumber string, logger *observability.Logger) *Client {
	var rest *twilio.RestClient
	if accountSID != "" && authToken != "" {
		rest = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return &Client{
		phoneNumber: phoneNumber,
		rest:        rest,
		logger:      logger,
	}
}

// PhoneNumber returns the configured origin number.
func (c *Client) PhoneNumber() string {
	return c.phoneNumber
}

// CallResult carries the provider-assigned identity of a placed call.
type CallResult struct {
	SID    string
	Status string
}

// PlaceCall asks Twilio to dial numeroDestino from the configured number.
// webhookURL is invoked once the call is answered; the status callback URL is
// derived from it by path substitution and receives lifecycle events.
func (c *Client) PlaceCall(ctx context.Context, numeroDestino, webhookURL string) (CallResult, error) {
	if c.rest == nil {
		return CallResult{}, ErrNotConfigured
	}
	if !strings.HasPrefix(webhookURL, "https://") {
		return CallResult{}, fmt.Errorf("%w: %s", ErrInsecureWebhookURL, webhookURL)
	}

	statusCallback := strings.Replace(webhookURL, "/webhook/", "/webhook-status/", 1)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "numero_destino", Value: numeroDestino},
		observability.Field{Key: "webhook_url", Value: webhookURL},
	)
	c.logger.Info(ctx, "Placing outbound call")

	params := &twilioApi.CreateCallParams{}
	params.SetTo(numeroDestino)
	params.SetFrom(c.phoneNumber)
	params.SetUrl(webhookURL)
	params.SetMethod("POST")
	params.SetStatusCallback(statusCallback)
	params.SetStatusCallbackEvent([]string{"initiated", "ringing", "answered", "completed"})
	params.SetStatusCallbackMethod("POST")

	call, err := c.rest.Api.CreateCall(params)
	if err != nil {
		c.logger.Error(ctx, "Twilio refused to create the call", err)
		return CallResult{}, fmt.Errorf("%w: %v", ErrCallRejected, err)
	}

	result := CallResult{}
	if call.Sid != nil {
		result.SID = *call.Sid
	}
	if call.Status != nil {
		result.Status = *call.Status
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: result.SID})
	c.logger.Info(ctx, "Outbound call created")
	return result, nil
}
