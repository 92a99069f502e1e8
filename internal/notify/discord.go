package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/pkg/carbon"
)

const (
	colorGreen = 0x2ECC71 // certificates
	colorBlue  = 0x3498DB // new bulk pickups
	colorAmber = 0xF39C12 // bulk pickups with skipped rows
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyBulkPickup posts an embed for a new bulk pickup.
func (d *DiscordNotifier) NotifyBulkPickup(ctx context.Context, p *BulkPickupPayload) error {
	embed := discordEmbed{
		Title: fmt.Sprintf("New bulk pickup #%d: %s", p.PickupID, p.Organization),
		URL:   p.URL,
		Color: colorBlue,
		Fields: []discordEmbedField{
			{Name: "Organization Type", Value: orDash(p.OrganizationType), Inline: true},
			{Name: "Contact", Value: orDash(p.ContactPerson), Inline: true},
			{Name: "Preferred Date", Value: p.PreferredDate.Format(time.DateOnly), Inline: true},
			{Name: "Items", Value: fmt.Sprintf("%d", p.TotalItems), Inline: true},
			{Name: "Eco Points", Value: fmt.Sprintf("%d", p.EcoPoints), Inline: true},
			{Name: "Carbon Saved", Value: carbon.Format(p.CarbonSaved), Inline: true},
		},
	}

	if p.SkippedRows > 0 {
		embed.Color = colorAmber
		embed.Description = fmt.Sprintf("%d row(s) were skipped during intake.", p.SkippedRows)
	}

	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

// NotifyCertificate posts an embed for an issued certificate.
func (d *DiscordNotifier) NotifyCertificate(ctx context.Context, c *CertificatePayload) error {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Certificate issued: %s", c.Number),
		URL:         c.URL,
		Color:       colorGreen,
		Description: fmt.Sprintf("Issued to %s.", orDash(c.Holder)),
		Fields: []discordEmbedField{
			{Name: "Items", Value: fmt.Sprintf("%d", c.TotalItems), Inline: true},
			{Name: "Eco Points", Value: fmt.Sprintf("%d", c.EcoPoints), Inline: true},
			{Name: "Carbon Saved", Value: carbon.Format(c.CarbonSaved), Inline: true},
		},
	}

	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
