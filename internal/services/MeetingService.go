package services

import (
	"sort"
	"sync"

	"msd/internal/models"
	"msd/internal/storage"
)

type MeetingServiceInterface interface {
	ListChatMessages(meetingID, filterUserID string) ([]models.ChatMessage, error)
	AddChatMessage(meetingID string, draft *models.MessageDraft) (*models.ChatMessage, error)
	ListParticipants(meetingID string) ([]models.Participant, error)
	UpdateParticipantStatus(meetingID, userID string, update *models.ParticipantUpdate) error
	ListPersonalNotes(meetingID string) ([]models.PersonalNote, error)
	SavePersonalNote(meetingID string, draft *models.NoteDraft) (*models.PersonalNote, error)
	ListSharedNotes(meetingID string) ([]models.SharedNote, error)
	ShareNote(meetingID string, draft *models.SharedNoteDraft) (*models.SharedNote, error)
	ListAgenda(meetingID string) ([]models.AgendaItem, error)
	SaveAgenda(meetingID string, items []models.AgendaItem) error
	ListTasks(meetingID string) ([]models.Task, error)
	SaveTasks(meetingID string, tasks []models.Task) error
	ListResources(meetingID string) ([]models.Resource, error)
	AddResource(meetingID string, draft *models.ResourceDraft) (*models.Resource, error)
	ListRecordings(meetingID string) ([]models.Recording, error)
	GetAnalytics(meetingID string) (*models.AnalyticsSummary, error)
	ClearMeetingData(meetingID string) error
	Meetings() []string
	MeetingCount() int
	KeyCount() int
}

// MeetingService routes every operation through a per-meeting data
// store. Stores are created lazily and cached, so the demo seed of a
// meeting runs exactly once per process.
type MeetingService struct {
	kv storage.KeyValueStore

	mu     sync.Mutex
	stores map[string]*MeetingDataStore
}

func (ms *MeetingService) storeFor(meetingID string) (*MeetingDataStore, error) {
	if meetingID == "" {
		meetingID = DefaultMeetingID
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ds, ok := ms.stores[meetingID]; ok {
		return ds, nil
	}
	ds, err := NewMeetingDataStore(meetingID, ms.kv)
	if err != nil {
		return nil, err
	}
	ms.stores[meetingID] = ds
	return ds, nil
}

func (ms *MeetingService) ListChatMessages(meetingID, filterUserID string) ([]models.ChatMessage, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.ChatMessages(filterUserID)
}

func (ms *MeetingService) AddChatMessage(meetingID string, draft *models.MessageDraft) (*models.ChatMessage, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.AddChatMessage(draft)
}

func (ms *MeetingService) ListParticipants(meetingID string) ([]models.Participant, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.Participants()
}

func (ms *MeetingService) UpdateParticipantStatus(meetingID, userID string, update *models.ParticipantUpdate) error {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return err
	}
	return ds.UpdateParticipant(userID, update)
}

func (ms *MeetingService) ListPersonalNotes(meetingID string) ([]models.PersonalNote, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.PersonalNotes()
}

func (ms *MeetingService) SavePersonalNote(meetingID string, draft *models.NoteDraft) (*models.PersonalNote, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.SavePersonalNote(draft)
}

func (ms *MeetingService) ListSharedNotes(meetingID string) ([]models.SharedNote, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.SharedNotes()
}

func (ms *MeetingService) ShareNote(meetingID string, draft *models.SharedNoteDraft) (*models.SharedNote, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.ShareNote(draft)
}

func (ms *MeetingService) ListAgenda(meetingID string) ([]models.AgendaItem, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.Agenda()
}

func (ms *MeetingService) SaveAgenda(meetingID string, items []models.AgendaItem) error {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return err
	}
	return ds.SaveAgenda(items)
}

func (ms *MeetingService) ListTasks(meetingID string) ([]models.Task, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.Tasks()
}

func (ms *MeetingService) SaveTasks(meetingID string, tasks []models.Task) error {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return err
	}
	return ds.SaveTasks(tasks)
}

func (ms *MeetingService) ListResources(meetingID string) ([]models.Resource, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.Resources()
}

func (ms *MeetingService) AddResource(meetingID string, draft *models.ResourceDraft) (*models.Resource, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.AddResource(draft)
}

func (ms *MeetingService) ListRecordings(meetingID string) ([]models.Recording, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.Recordings()
}

func (ms *MeetingService) GetAnalytics(meetingID string) (*models.AnalyticsSummary, error) {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return nil, err
	}
	return ds.Analytics()
}

// ClearMeetingData wipes the namespace and drops the cached store, so
// the next access re-seeds the demo data.
func (ms *MeetingService) ClearMeetingData(meetingID string) error {
	ds, err := ms.storeFor(meetingID)
	if err != nil {
		return err
	}
	if err := ds.Clear(); err != nil {
		return err
	}

	ms.mu.Lock()
	delete(ms.stores, ds.MeetingID())
	ms.mu.Unlock()
	return nil
}

func (ms *MeetingService) Meetings() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ids := make([]string, 0, len(ms.stores))
	for id := range ms.stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (ms *MeetingService) MeetingCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.stores)
}

func (ms *MeetingService) KeyCount() int {
	keys, err := ms.kv.Keys("")
	if err != nil {
		return 0
	}
	return len(keys)
}

func NewMeetingService(kv storage.KeyValueStore) MeetingServiceInterface {
	return &MeetingService{
		kv:     kv,
		stores: make(map[string]*MeetingDataStore),
	}
}
