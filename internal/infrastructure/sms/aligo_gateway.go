package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"susunara/internal/usecase/interfaces"
)

const defaultAligoEndpoint = "https://apis.aligo.in/send/"

// AligoGateway sends LMS messages through the Aligo form API.
//
// Supported env vars:
//   - ALIGO_API_KEY
//   - ALIGO_USER_ID
//   - ALIGO_SENDER (the registered sender number)
//   - ALIGO_ENDPOINT (optional override, used by tests)
//
// Without credentials the gateway runs in log-only mode so local setups can
// exercise the full queue path without a real provider account.

type AligoGateway struct {
	client   *http.Client
	endpoint string
	apiKey   string
	userID   string
	sender   string
}

var _ interfaces.ISMSGateway = (*AligoGateway)(nil)

type aligoResponse struct {
	ResultCode aligoCode `json:"result_code"`
	Message    string    `json:"message"`
}

// aligoCode tolerates both numeric and quoted result codes; the provider is
// not consistent across endpoints.
type aligoCode string

func (c *aligoCode) UnmarshalJSON(data []byte) error {
	*c = aligoCode(strings.Trim(string(data), `"`))
	return nil
}

func (c aligoCode) String() string { return string(c) }

func NewAligoGateway() *AligoGateway {
	return &AligoGateway{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: getenvDefault("ALIGO_ENDPOINT", defaultAligoEndpoint),
		apiKey:   os.Getenv("ALIGO_API_KEY"),
		userID:   os.Getenv("ALIGO_USER_ID"),
		sender:   os.Getenv("ALIGO_SENDER"),
	}
}

func (g *AligoGateway) Send(ctx context.Context, receiver, message string) error {
	if g.apiKey == "" || g.userID == "" || g.sender == "" {
		log.Printf("[sms][aligo] log-only mode receiver=%s msg=%q", receiver, message)
		return nil
	}

	form := url.Values{}
	form.Set("key", g.apiKey)
	form.Set("user_id", g.userID)
	form.Set("sender", g.sender)
	form.Set("receiver", receiver)
	form.Set("msg", message)
	form.Set("msg_type", "LMS")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("aligo: unexpected status %d", resp.StatusCode)
	}

	var parsed aligoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("aligo: invalid response: %w", err)
	}
	if parsed.ResultCode.String() != "1" {
		return fmt.Errorf("aligo: send failed code=%s message=%s", parsed.ResultCode, parsed.Message)
	}

	log.Printf("[sms][aligo] sent receiver=%s", receiver)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
