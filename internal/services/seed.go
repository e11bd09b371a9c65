package services

import (
	"fmt"
	"time"

	"msd/internal/models"
)

// Demo fixtures mirror the roster a fresh meeting room starts with.
// Participants, agenda and tasks are also served as read fallbacks for
// meetings whose collections were never written.

func fixtureParticipants() []models.Participant {
	return []models.Participant{
		{ID: "user1", Name: "You", Role: models.RoleHost, IsOnline: true},
		{ID: "user2", Name: "Dr. Sarah Chen", Role: models.RoleCoHost, IsOnline: true},
		{ID: "user3", Name: "Alex Johnson", Role: models.RoleStudent, IsOnline: true, IsMuted: true},
		{ID: "user4", Name: "Maria Garcia", Role: models.RoleStudent, IsOnline: true, IsVideoOff: true},
		{ID: "user5", Name: "Prof. David Kim", Role: models.RoleTeacher},
		{ID: "user6", Name: "Emma Wilson", Role: models.RoleStudent, IsOnline: true},
	}
}

func fixtureAgenda() []models.AgendaItem {
	return []models.AgendaItem{
		{ID: "1", Title: "Welcome & Introductions", Description: "Brief introductions from all participants", Completed: true, Order: 0},
		{ID: "2", Title: "Review Assignment Progress", Description: "Discuss current progress on the project", Order: 1},
		{ID: "3", Title: "Q&A Session", Description: "Address questions and concerns", Order: 2},
	}
}

func fixtureTasks(now time.Time) []models.Task {
	return []models.Task{
		{
			ID:             "1",
			Title:          "Complete Chapter 5 Reading",
			Description:    "Read and summarize key points",
			AssignedTo:     "user3",
			AssignedToName: "Alex Johnson",
			DueDate:        now.Add(7 * 24 * time.Hour),
			Status:         models.TaskStatusTodo,
			CreatedAt:      now,
		},
		{
			ID:             "2",
			Title:          "Submit Project Proposal",
			Description:    "Finalize and submit the project proposal document",
			AssignedTo:     "user4",
			AssignedToName: "Maria Garcia",
			DueDate:        now.Add(3 * 24 * time.Hour),
			Status:         models.TaskStatusInProgress,
			CreatedAt:      now,
		},
	}
}

// seedMessages spreads ten messages over the hour before now, oldest
// first, 100 seconds apart.
func seedMessages(now time.Time) []models.ChatMessage {
	seeds := []struct {
		userID   string
		username string
		message  string
	}{
		{"user2", "Dr. Sarah Chen", "Welcome everyone! Let's get started."},
		{"user1", "You", "Thanks for joining!"},
		{"user3", "Alex Johnson", "Excited to be here!"},
		{"user4", "Maria Garcia", "Looking forward to the discussion."},
		{"user2", "Dr. Sarah Chen", "Let's review the agenda items."},
		{"user6", "Emma Wilson", "I have a question about the assignment."},
		{"user2", "Dr. Sarah Chen", "Feel free to ask!"},
		{"user1", "You", "I'll share the document in resources."},
		{"user3", "Alex Johnson", "Got it, thanks!"},
		{"user5", "Prof. David Kim", "Great progress everyone!"},
	}

	messages := make([]models.ChatMessage, 0, len(seeds))
	for i, s := range seeds {
		messages = append(messages, models.ChatMessage{
			ID:        fmt.Sprintf("seed-%02d", i+1),
			UserID:    s.userID,
			Username:  s.username,
			Message:   s.message,
			Timestamp: now.Add(-time.Hour + time.Duration(i)*100*time.Second),
		})
	}
	return messages
}

// seedDemoData writes the four demo collections. Notes, resources and
// recordings start empty and are never seeded.
func (ds *MeetingDataStore) seedDemoData() error {
	if err := saveList(ds, collectionChat, seedMessages(ds.now())); err != nil {
		return err
	}
	if err := saveList(ds, collectionParticipants, fixtureParticipants()); err != nil {
		return err
	}
	if err := saveList(ds, collectionAgenda, fixtureAgenda()); err != nil {
		return err
	}
	return saveList(ds, collectionTasks, fixtureTasks(ds.now()))
}
