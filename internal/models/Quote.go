package models

type QuoteRequest struct {
	AssignmentType string  `json:"assignmentType" validate:"required"`
	Pages          int     `json:"pages" validate:"required|min:1"`
	UrgencyDays    float64 `json:"urgencyDays"`
	AcademicLevel  string  `json:"academicLevel" validate:"required"`
}

type QuoteResult struct {
	Amount  int    `json:"amount"`
	Details string `json:"details"`
}
