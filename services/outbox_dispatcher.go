package services

import (
	"time"

	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

// OutboxDispatcher drains pending notification_events in the background.
// Events that keep failing are parked as failed after MaxAttempts; the admin
// endpoints can re-arm them.
type OutboxDispatcher struct {
	DB          *gorm.DB
	Notifier    *Notifier
	Interval    time.Duration
	MaxAttempts int
	StopChan    chan struct{}
}

func NewOutboxDispatcher(db *gorm.DB, notifier *Notifier) *OutboxDispatcher {
	return &OutboxDispatcher{
		DB:          db,
		Notifier:    notifier,
		Interval:    5 * time.Second,
		MaxAttempts: 5,
		StopChan:    make(chan struct{}),
	}
}

func (od *OutboxDispatcher) Start() {
	go func() {
		ticker := time.NewTicker(od.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				od.Dispatch()
			case <-od.StopChan:
				return
			}
		}
	}()
}

func (od *OutboxDispatcher) Stop() {
	close(od.StopChan)
}

// Dispatch sends every pending event once, oldest first. One bad event does
// not hold up the rest of the queue.
func (od *OutboxDispatcher) Dispatch() {
	var events []models.NotificationEvent
	if err := od.DB.Where("status = ?", models.NotificationPending).
		Order("created_at ASC").
		Limit(100).
		Find(&events).Error; err != nil {
		utils.ErrorLogger.Printf("outbox: fetch pending events: %v", err)
		return
	}

	for i := range events {
		od.dispatchOne(&events[i])
	}
}

func (od *OutboxDispatcher) dispatchOne(event *models.NotificationEvent) {
	event.Attempts++

	if err := od.Notifier.Send(event); err != nil {
		event.LastError = err.Error()
		if event.Attempts >= od.MaxAttempts {
			event.Status = models.NotificationFailed
			utils.ErrorLogger.Printf("outbox: event %d (%s) failed permanently after %d attempts: %v",
				event.ID, event.Action, event.Attempts, err)
		} else {
			utils.InfoLogger.Printf("outbox: event %d (%s) attempt %d failed: %v",
				event.ID, event.Action, event.Attempts, err)
		}
	} else {
		now := time.Now()
		event.Status = models.NotificationSent
		event.SentAt = &now
		event.LastError = ""
	}

	if err := od.DB.Save(event).Error; err != nil {
		utils.ErrorLogger.Printf("outbox: save event %d: %v", event.ID, err)
	}
}
