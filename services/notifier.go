package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

// Notification actions, matching what the external script expects in the
// "action" form field.
const (
	ActionNewBooking = "new_booking"
	ActionConfirmed  = "confirmed"
	ActionCancelled  = "cancelled"
	ActionContact    = "contact"
)

// Notifier posts denormalized summaries to the external webhook. Delivery is
// advisory: the primary record is already committed before anything is
// enqueued, so a lost notification never implies a lost row.
type Notifier struct {
	WebhookURL string
	Client     *http.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Enqueue records an outbox row. Errors are logged and swallowed: a failed
// enqueue must not disturb the mutation that triggered it.
func Enqueue(db *gorm.DB, action string, fields map[string]string) {
	payload, err := json.Marshal(fields)
	if err != nil {
		utils.ErrorLogger.Printf("notifier: marshal payload for %s: %v", action, err)
		return
	}

	event := models.NotificationEvent{
		Action:  action,
		Payload: string(payload),
		Status:  models.NotificationPending,
	}
	if err := db.Create(&event).Error; err != nil {
		utils.ErrorLogger.Printf("notifier: enqueue %s: %v", action, err)
	}
}

// Send posts one event form-encoded. A non-2xx response counts as failure.
func (n *Notifier) Send(event *models.NotificationEvent) error {
	if n.WebhookURL == "" {
		return errors.New("webhook URL not configured")
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(event.Payload), &fields); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	form := url.Values{}
	form.Set("action", event.Action)
	for k, v := range fields {
		form.Set(k, v)
	}

	resp, err := n.Client.Post(n.WebhookURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}
