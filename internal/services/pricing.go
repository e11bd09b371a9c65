package services

import (
	"fmt"
	"math"

	"msd/internal/models"
)

type assignmentPricing struct {
	base       float64
	multiplier float64
}

var pricingStructure = map[string]assignmentPricing{
	"essay":        {base: 15, multiplier: 1.0},
	"research":     {base: 20, multiplier: 1.2},
	"dissertation": {base: 30, multiplier: 1.5},
	"presentation": {base: 25, multiplier: 1.1},
	"homework":     {base: 10, multiplier: 0.8},
}

// Urgency is keyed by delivery window in days; 0.5 is same-day.
var urgencyMultipliers = map[float64]float64{
	7:   1.0,
	3:   1.3,
	1:   1.6,
	0.5: 2.0,
}

var academicLevelMultipliers = map[string]float64{
	"highschool":    1.0,
	"undergraduate": 1.2,
	"masters":       1.5,
	"phd":           2.0,
}

func urgencyLabel(days float64) string {
	switch days {
	case 7:
		return "Standard"
	case 3:
		return "Rush"
	case 1:
		return "Urgent"
	default:
		return "Emergency"
	}
}

type PricingServiceInterface interface {
	Quote(req *models.QuoteRequest) (*models.QuoteResult, error)
}

type PricingService struct {
}

// Quote prices an assignment as base rate per page scaled by type,
// urgency and academic level, rounded to the nearest dollar.
func (ps *PricingService) Quote(req *models.QuoteRequest) (*models.QuoteResult, error) {
	if err := validateDraft(req); err != nil {
		return nil, err
	}

	pricing, ok := pricingStructure[req.AssignmentType]
	if !ok {
		return nil, models.NewValidationError("assignmentType", fmt.Sprintf("unknown assignment type %q", req.AssignmentType))
	}
	urgency, ok := urgencyMultipliers[req.UrgencyDays]
	if !ok {
		return nil, models.NewValidationError("urgencyDays", fmt.Sprintf("unsupported urgency %v", req.UrgencyDays))
	}
	level, ok := academicLevelMultipliers[req.AcademicLevel]
	if !ok {
		return nil, models.NewValidationError("academicLevel", fmt.Sprintf("unknown academic level %q", req.AcademicLevel))
	}

	total := pricing.base * float64(req.Pages) * pricing.multiplier * urgency * level

	pageWord := "page"
	if req.Pages > 1 {
		pageWord = "pages"
	}
	details := fmt.Sprintf("%d %s %s at %s level with %s delivery",
		req.Pages, pageWord, req.AssignmentType, req.AcademicLevel, urgencyLabel(req.UrgencyDays))

	return &models.QuoteResult{
		Amount:  int(math.Round(total)),
		Details: details,
	}, nil
}

func NewPricingService() PricingServiceInterface {
	return &PricingService{}
}
