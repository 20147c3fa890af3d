package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/majisafi/waterdelivery/backend/pkg/config"
)

func TestNewTextSMSSender(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		recipient string
		wantErr   bool
	}{
		{
			name:      "Valid credentials",
			apiKey:    "test_key",
			recipient: "0711000000",
			wantErr:   false,
		},
		{
			name:      "Missing API key",
			apiKey:    "",
			recipient: "0711000000",
			wantErr:   true,
		},
		{
			name:      "Missing recipient phone",
			apiKey:    "test_key",
			recipient: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.SMSConfig{
				BaseURL:        "https://sms.textsms.co.ke/api/services/sendsms/",
				APIKey:         tt.apiKey,
				PartnerID:      "14608",
				Shortcode:      "TextSMS",
				RecipientPhone: tt.recipient,
			}

			sender, err := NewTextSMSSender(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTextSMSSender() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && sender == nil {
				t.Error("NewTextSMSSender() returned nil sender")
			}
		})
	}
}

func mockResponse(code int, messageID int64) TextSMSResponse {
	var resp TextSMSResponse
	resp.Responses = append(resp.Responses, struct {
		Code        int    `json:"respose-code"`
		Description string `json:"response-description"`
		Mobile      string `json:"mobile"`
		MessageID   int64  `json:"messageid"`
	}{
		Code:      code,
		Mobile:    "0711000000",
		MessageID: messageID,
	})
	return resp
}

func TestTextSMSSender_SendText(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockStatusCode int
		mockResponse   TextSMSResponse
		wantErr        bool
	}{
		{
			name:           "Successful send",
			body:           "New water order\nCustomer: Alice",
			mockStatusCode: http.StatusOK,
			mockResponse:   mockResponse(200, 8290842),
			wantErr:        false,
		},
		{
			name:           "HTTP error response",
			body:           "Test message",
			mockStatusCode: http.StatusBadRequest,
			mockResponse:   TextSMSResponse{},
			wantErr:        true,
		},
		{
			name:           "Gateway-level rejection",
			body:           "Test message",
			mockStatusCode: http.StatusOK,
			mockResponse:   mockResponse(1004, 0),
			wantErr:        true,
		},
		{
			name:           "Empty responses array",
			body:           "Test message",
			mockStatusCode: http.StatusOK,
			mockResponse:   TextSMSResponse{},
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock gateway
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != "POST" {
					t.Errorf("Expected POST request, got %s", r.Method)
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("Expected Content-Type: application/json, got %s", r.Header.Get("Content-Type"))
				}

				var payload TextSMSMessage
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Errorf("failed to decode request payload: %v", err)
				}
				if payload.APIKey != "test_key" {
					t.Errorf("Expected apikey test_key, got %s", payload.APIKey)
				}
				if payload.PartnerID != "14608" {
					t.Errorf("Expected partnerID 14608, got %s", payload.PartnerID)
				}
				if payload.Shortcode != "TextSMS" {
					t.Errorf("Expected shortcode TextSMS, got %s", payload.Shortcode)
				}
				if payload.Mobile != "0711000000" {
					t.Errorf("Expected mobile 0711000000, got %s", payload.Mobile)
				}
				if payload.Message != tt.body {
					t.Errorf("Expected message %q, got %q", tt.body, payload.Message)
				}

				w.WriteHeader(tt.mockStatusCode)
				if err := json.NewEncoder(w).Encode(tt.mockResponse); err != nil {
					t.Errorf("failed to encode mock response: %v", err)
				}
			}))
			defer server.Close()

			// Create sender pointed at the mock gateway
			sender := &TextSMSSender{
				apiKey:     "test_key",
				partnerID:  "14608",
				shortcode:  "TextSMS",
				recipient:  "0711000000",
				httpClient: server.Client(),
				baseURL:    server.URL,
			}

			messageID, err := sender.SendText(tt.body)

			if (err != nil) != tt.wantErr {
				t.Errorf("SendText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && messageID == "" {
				t.Error("SendText() returned empty message ID")
			}
		})
	}
}

func TestTextSMSSender_SendText_NetworkError(t *testing.T) {
	sender := &TextSMSSender{
		apiKey:     "test_key",
		partnerID:  "14608",
		shortcode:  "TextSMS",
		recipient:  "0711000000",
		httpClient: &http.Client{},
		baseURL:    "http://127.0.0.1:0",
	}

	_, err := sender.SendText("Test")
	if err == nil {
		t.Error("Expected network error, got nil")
	}
}
