package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/majisafi/waterdelivery/backend/pkg/config"
)

// TextSMSSender sends messages via the TextSMS gateway
type TextSMSSender struct {
	apiKey     string
	partnerID  string
	shortcode  string
	recipient  string
	httpClient *http.Client
	baseURL    string
}

// NewTextSMSSender creates a new TextSMS sender
func NewTextSMSSender(cfg *config.SMSConfig) (*TextSMSSender, error) {
	if cfg.APIKey == "" || cfg.RecipientPhone == "" {
		return nil, fmt.Errorf("SMS_API_KEY and SMS_RECIPIENT_PHONE must be set")
	}

	return &TextSMSSender{
		apiKey:    cfg.APIKey,
		partnerID: cfg.PartnerID,
		shortcode: cfg.Shortcode,
		recipient: cfg.RecipientPhone,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.BaseURL,
	}, nil
}

// Recipient returns the configured destination phone number
func (s *TextSMSSender) Recipient() string {
	return s.recipient
}

// TextSMSMessage represents the gateway request payload
type TextSMSMessage struct {
	APIKey    string `json:"apikey"`
	PartnerID string `json:"partnerID"`
	Message   string `json:"message"`
	Shortcode string `json:"shortcode"`
	Mobile    string `json:"mobile"`
}

// TextSMSResponse represents the gateway response
type TextSMSResponse struct {
	Responses []struct {
		// The gateway really does spell the field "respose-code".
		Code        int    `json:"respose-code"`
		Description string `json:"response-description"`
		Mobile      string `json:"mobile"`
		MessageID   int64  `json:"messageid"`
	} `json:"responses"`
}

// SendText sends a text message to the configured recipient
func (s *TextSMSSender) SendText(body string) (string, error) {
	message := TextSMSMessage{
		APIKey:    s.apiKey,
		PartnerID: s.partnerID,
		Message:   body,
		Shortcode: s.shortcode,
		Mobile:    s.recipient,
	}

	jsonData, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TextSMS API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var smsResp TextSMSResponse
	if err := json.Unmarshal(respBody, &smsResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(smsResp.Responses) == 0 {
		return "", fmt.Errorf("no message ID in response")
	}

	first := smsResp.Responses[0]
	if first.Code != http.StatusOK {
		return "", fmt.Errorf("TextSMS gateway rejected message (code %d): %s", first.Code, first.Description)
	}

	return fmt.Sprintf("%d", first.MessageID), nil
}
