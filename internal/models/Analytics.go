package models

// TimelineBucket is one wall-clock hour of the trailing 24-hour window.
type TimelineBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// AnalyticsSummary is derived from the live chat and roster collections
// on every call; it is never stored.
type AnalyticsSummary struct {
	MessagesPerUser       map[string]int   `json:"messagesPerUser"`
	ParticipationTimeline []TimelineBucket `json:"participationTimeline"`
	TotalMessages         int              `json:"totalMessages"`
	ActiveParticipants    int              `json:"activeParticipants"`
	TotalParticipants     int              `json:"totalParticipants"`
}
