package services

import (
	"time"

	"msd/internal/models"
)

// Analytics derives a summary from the live chat and roster state. It
// recomputes on every call; nothing here is persisted.
func (ds *MeetingDataStore) Analytics() (*models.AnalyticsSummary, error) {
	messages, err := ds.ChatMessages("")
	if err != nil {
		return nil, err
	}
	participants, err := ds.Participants()
	if err != nil {
		return nil, err
	}

	messagesPerUser := make(map[string]int)
	for _, msg := range messages {
		messagesPerUser[msg.UserID]++
	}

	// 24 hourly buckets, oldest first, each covering the half-open
	// wall-clock hour [start, start+1h).
	now := ds.now()
	timeline := make([]models.TimelineBucket, 0, 24)
	for i := 23; i >= 0; i-- {
		h := now.Add(-time.Duration(i) * time.Hour)
		hourStart := time.Date(h.Year(), h.Month(), h.Day(), h.Hour(), 0, 0, 0, h.Location())
		hourEnd := hourStart.Add(time.Hour)

		count := 0
		for _, msg := range messages {
			if !msg.Timestamp.Before(hourStart) && msg.Timestamp.Before(hourEnd) {
				count++
			}
		}
		timeline = append(timeline, models.TimelineBucket{
			Hour:  hourStart.Hour(),
			Count: count,
		})
	}

	active := 0
	for _, p := range participants {
		if p.IsOnline {
			active++
		}
	}

	return &models.AnalyticsSummary{
		MessagesPerUser:       messagesPerUser,
		ParticipationTimeline: timeline,
		TotalMessages:         len(messages),
		ActiveParticipants:    active,
		TotalParticipants:     len(participants),
	}, nil
}
