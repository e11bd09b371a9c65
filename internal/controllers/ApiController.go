package controllers

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"msd/internal/models"
	"msd/internal/providers"
	"msd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// User-facing error strings; handlers never leak internal error text.
const (
	msgBadRequest  = "Invalid request. Please check your input and try again."
	msgNotFound    = "The requested resource was not found."
	msgServerError = "Server error. Please try again later or contact support."
	msgUnexpected  = "An unexpected error occurred. Please try again."
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type ApiController struct {
	logger  providers.Logger
	service services.MeetingServiceInterface
	pricing services.PricingServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.MeetingServiceInterface, pricing services.PricingServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		pricing: pricing,
		cache:   cache,
	}
}

func getMeeting(r *http.Request) string {
	m := r.URL.Query().Get("m")
	if m == "" {
		return services.DefaultMeetingID
	}
	return m
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeError maps domain errors onto the HTTP surface. Validation
// failures keep their field detail; everything else gets a generic
// message and a log line.
func (ac *ApiController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logType := providers.GetLogTypeByRequestType(r.Method)

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
		return
	}
	var nferr *models.NotFoundError
	if errors.As(err, &nferr) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: msgNotFound})
		return
	}
	var serr *models.StorageError
	if errors.As(err, &serr) {
		ac.logger.Errorf(logType, "Storage failure on %s: %s", r.URL.Path, err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: msgUnexpected})
		return
	}
	ac.logger.Errorf(logType, "Request to %s failed: %s", r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgServerError})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
		return false
	}
	return true
}

// serveFromCacheOrCompute is used only by the derived read endpoints;
// collection reads always hit the live store.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeError(w, r, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgServerError})
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// ---- chat ----

func (ac *ApiController) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := ac.service.ListChatMessages(getMeeting(r), r.URL.Query().Get("user"))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (ac *ApiController) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var draft models.MessageDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	msg, err := ac.service.AddChatMessage(getMeeting(r), &draft)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// ---- participants ----

func (ac *ApiController) GetParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := ac.service.ListParticipants(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, participants)
}

type participantStatusPayload struct {
	UserID  string                   `json:"userId"`
	Updates models.ParticipantUpdate `json:"updates"`
}

func (ac *ApiController) UpdateParticipantStatus(w http.ResponseWriter, r *http.Request) {
	var payload participantStatusPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.UserID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
		return
	}
	if err := ac.service.UpdateParticipantStatus(getMeeting(r), payload.UserID, &payload.Updates); err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// ---- notes ----

func (ac *ApiController) GetPersonalNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := ac.service.ListPersonalNotes(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (ac *ApiController) SavePersonalNote(w http.ResponseWriter, r *http.Request) {
	var draft models.NoteDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	note, err := ac.service.SavePersonalNote(getMeeting(r), &draft)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (ac *ApiController) GetSharedNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := ac.service.ListSharedNotes(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (ac *ApiController) ShareNote(w http.ResponseWriter, r *http.Request) {
	var draft models.SharedNoteDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	note, err := ac.service.ShareNote(getMeeting(r), &draft)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// ---- agenda ----

func (ac *ApiController) GetAgenda(w http.ResponseWriter, r *http.Request) {
	agenda, err := ac.service.ListAgenda(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agenda)
}

func (ac *ApiController) SaveAgenda(w http.ResponseWriter, r *http.Request) {
	var items []models.AgendaItem
	if !decodeBody(w, r, &items) {
		return
	}
	if err := ac.service.SaveAgenda(getMeeting(r), items); err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// ---- tasks ----

func (ac *ApiController) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := ac.service.ListTasks(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (ac *ApiController) SaveTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []models.Task
	if !decodeBody(w, r, &tasks) {
		return
	}
	if err := ac.service.SaveTasks(getMeeting(r), tasks); err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// ---- resources ----

func (ac *ApiController) GetResources(w http.ResponseWriter, r *http.Request) {
	resources, err := ac.service.ListResources(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

func (ac *ApiController) AddResource(w http.ResponseWriter, r *http.Request) {
	var draft models.ResourceDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	res, err := ac.service.AddResource(getMeeting(r), &draft)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// ---- recordings ----

func (ac *ApiController) GetRecordings(w http.ResponseWriter, r *http.Request) {
	recordings, err := ac.service.ListRecordings(getMeeting(r))
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordings)
}

// ---- derived endpoints ----

func (ac *ApiController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	m := getMeeting(r)
	ac.serveFromCacheOrCompute(w, r, "analytics:"+m, func() (any, error) {
		return ac.service.GetAnalytics(m)
	})
}

func (ac *ApiController) GetQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &models.QuoteRequest{
		AssignmentType: q.Get("assignmentType"),
		Pages:          cast.ToInt(q.Get("pages")),
		UrgencyDays:    cast.ToFloat64(q.Get("urgency")),
		AcademicLevel:  q.Get("academicLevel"),
	}
	cacheKey := fmt.Sprintf("quote:%s:%d:%v:%s", req.AssignmentType, req.Pages, req.UrgencyDays, req.AcademicLevel)
	ac.serveFromCacheOrCompute(w, r, cacheKey, func() (any, error) {
		return ac.pricing.Quote(req)
	})
}

// ---- lifecycle ----

func (ac *ApiController) ClearMeeting(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.ClearMeetingData(getMeeting(r)); err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
