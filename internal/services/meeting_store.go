package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/microcosm-cc/bluemonday"

	"msd/internal/models"
	"msd/internal/storage"
)

// DefaultMeetingID is substituted when a caller supplies no meeting id.
const DefaultMeetingID = "demo-meeting"

const (
	collectionChat          = "chat"
	collectionParticipants  = "participants"
	collectionNotesPersonal = "notes_personal"
	collectionNotesShared   = "notes_shared"
	collectionAgenda        = "agenda"
	collectionTasks         = "tasks"
	collectionResources     = "resources"
	collectionRecordings    = "recordings"
)

// sanitizer strips all markup from chat message bodies before they are
// stored, so no stored message can carry script or markup.
var sanitizer = bluemonday.StrictPolicy()

// MeetingDataStore exposes the collections of a single meeting as typed
// operations over a shared key/value store. All keys are namespaced
// under meeting_<id>_ so meetings never see each other's data.
type MeetingDataStore struct {
	meetingID string
	prefix    string
	kv        storage.KeyValueStore

	// injectable for deterministic tests
	now   func() time.Time
	newID func() string
}

func NewMeetingDataStore(meetingID string, kv storage.KeyValueStore) (*MeetingDataStore, error) {
	if meetingID == "" {
		meetingID = DefaultMeetingID
	}
	ds := &MeetingDataStore{
		meetingID: meetingID,
		prefix:    fmt.Sprintf("meeting_%s_", meetingID),
		kv:        kv,
		now:       time.Now,
		newID:     newRecordID,
	}
	if err := ds.ensureSeeded(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *MeetingDataStore) MeetingID() string {
	return ds.meetingID
}

// newRecordID returns a time-ordered id so records sort by creation
// within a collection.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (ds *MeetingDataStore) key(collection string) string {
	return ds.prefix + collection
}

// loadList reads a collection. found is false when the key is absent,
// which callers use to fall back to fixtures without writing them.
func loadList[T any](ds *MeetingDataStore, collection string) (items []T, found bool, err error) {
	raw, ok, err := ds.kv.Get(ds.key(collection))
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return []T{}, false, nil
	}
	items, err = models.DecodeList[T](ds.key(collection), raw)
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func saveList[T any](ds *MeetingDataStore, collection string, items []T) error {
	raw, err := models.EncodeList(items)
	if err != nil {
		return err
	}
	return ds.kv.Set(ds.key(collection), raw)
}

func validateDraft(s interface{}) error {
	v := validate.Struct(s)
	if v.Validate() {
		return nil
	}
	fields := make(map[string]string, len(v.Errors))
	for field, ms := range v.Errors {
		fields[field] = ms.One()
	}
	return &models.ValidationError{Fields: fields}
}

// ensureSeeded populates the demo collections the first time a meeting
// is opened. The chat collection is the sentinel: once it holds any
// message, seeding never runs again for this meeting.
func (ds *MeetingDataStore) ensureSeeded() error {
	messages, _, err := loadList[models.ChatMessage](ds, collectionChat)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return nil
	}
	return ds.seedDemoData()
}

// ---- chat ----

// ChatMessages returns the full history, or only the messages a given
// participant sent or directly received when filterUserID is set.
func (ds *MeetingDataStore) ChatMessages(filterUserID string) ([]models.ChatMessage, error) {
	messages, _, err := loadList[models.ChatMessage](ds, collectionChat)
	if err != nil {
		return nil, err
	}
	if filterUserID == "" {
		return messages, nil
	}
	filtered := make([]models.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.SentTo(filterUserID) {
			filtered = append(filtered, msg)
		}
	}
	return filtered, nil
}

func (ds *MeetingDataStore) AddChatMessage(draft *models.MessageDraft) (*models.ChatMessage, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	messages, _, err := loadList[models.ChatMessage](ds, collectionChat)
	if err != nil {
		return nil, err
	}
	msg := models.ChatMessage{
		ID:          ds.newID(),
		UserID:      draft.UserID,
		Username:    draft.Username,
		Message:     sanitizer.Sanitize(draft.Message),
		Timestamp:   ds.now(),
		RecipientID: draft.RecipientID,
		Attachments: draft.Attachments,
		Reactions:   draft.Reactions,
	}
	messages = append(messages, msg)
	if err := saveList(ds, collectionChat, messages); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ---- participants ----

// Participants falls back to the fixture roster when nothing has been
// stored yet. The fallback is not written back; the collection stays
// absent until the first update.
func (ds *MeetingDataStore) Participants() ([]models.Participant, error) {
	participants, found, err := loadList[models.Participant](ds, collectionParticipants)
	if err != nil {
		return nil, err
	}
	if !found {
		return fixtureParticipants(), nil
	}
	return participants, nil
}

// UpdateParticipant merges a partial update into one roster entry.
// Unknown ids are a silent no-op and nothing is written.
func (ds *MeetingDataStore) UpdateParticipant(userID string, update *models.ParticipantUpdate) error {
	participants, err := ds.Participants()
	if err != nil {
		return err
	}
	for i := range participants {
		if participants[i].ID == userID {
			update.ApplyTo(&participants[i])
			return saveList(ds, collectionParticipants, participants)
		}
	}
	return nil
}

// ---- notes ----

func (ds *MeetingDataStore) PersonalNotes() ([]models.PersonalNote, error) {
	notes, _, err := loadList[models.PersonalNote](ds, collectionNotesPersonal)
	return notes, err
}

// SavePersonalNote upserts: a draft with a known id overwrites that
// note, a draft without an id creates a new one.
func (ds *MeetingDataStore) SavePersonalNote(draft *models.NoteDraft) (*models.PersonalNote, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	notes, _, err := loadList[models.PersonalNote](ds, collectionNotesPersonal)
	if err != nil {
		return nil, err
	}
	note := models.PersonalNote{
		ID:        draft.ID,
		Content:   draft.Content,
		UpdatedAt: ds.now(),
	}
	if note.ID == "" {
		note.ID = ds.newID()
	}
	replaced := false
	for i := range notes {
		if notes[i].ID == note.ID {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, note)
	}
	if err := saveList(ds, collectionNotesPersonal, notes); err != nil {
		return nil, err
	}
	return &note, nil
}

func (ds *MeetingDataStore) SharedNotes() ([]models.SharedNote, error) {
	notes, _, err := loadList[models.SharedNote](ds, collectionNotesShared)
	return notes, err
}

// ShareNote appends to the shared board. Authorship is always
// attributed to the local participant.
func (ds *MeetingDataStore) ShareNote(draft *models.SharedNoteDraft) (*models.SharedNote, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	notes, _, err := loadList[models.SharedNote](ds, collectionNotesShared)
	if err != nil {
		return nil, err
	}
	note := models.SharedNote{
		ID:         ds.newID(),
		AuthorID:   "user1",
		AuthorName: "You",
		Content:    draft.Content,
		CreatedAt:  ds.now(),
	}
	notes = append(notes, note)
	if err := saveList(ds, collectionNotesShared, notes); err != nil {
		return nil, err
	}
	return &note, nil
}

// ---- agenda ----

func (ds *MeetingDataStore) Agenda() ([]models.AgendaItem, error) {
	items, found, err := loadList[models.AgendaItem](ds, collectionAgenda)
	if err != nil {
		return nil, err
	}
	if !found {
		return fixtureAgenda(), nil
	}
	return items, nil
}

// SaveAgenda replaces the whole collection, including saving an empty
// list, which afterwards reads back as empty rather than the fixture.
func (ds *MeetingDataStore) SaveAgenda(items []models.AgendaItem) error {
	return saveList(ds, collectionAgenda, items)
}

// ---- tasks ----

func (ds *MeetingDataStore) Tasks() ([]models.Task, error) {
	tasks, found, err := loadList[models.Task](ds, collectionTasks)
	if err != nil {
		return nil, err
	}
	if !found {
		return fixtureTasks(ds.now()), nil
	}
	return tasks, nil
}

func (ds *MeetingDataStore) SaveTasks(tasks []models.Task) error {
	return saveList(ds, collectionTasks, tasks)
}

// ---- resources ----

func (ds *MeetingDataStore) Resources() ([]models.Resource, error) {
	resources, _, err := loadList[models.Resource](ds, collectionResources)
	return resources, err
}

func (ds *MeetingDataStore) AddResource(draft *models.ResourceDraft) (*models.Resource, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	resources, _, err := loadList[models.Resource](ds, collectionResources)
	if err != nil {
		return nil, err
	}
	res := models.Resource{
		ID:             ds.newID(),
		Name:           draft.Name,
		Type:           draft.Type,
		Size:           draft.Size,
		DataURL:        draft.DataURL,
		UploadedBy:     draft.UploadedBy,
		UploadedByName: draft.UploadedByName,
		UploadedAt:     ds.now(),
	}
	if res.UploadedBy == "" {
		res.UploadedBy = "user1"
	}
	if res.UploadedByName == "" {
		res.UploadedByName = "You"
	}
	resources = append(resources, res)
	if err := saveList(ds, collectionResources, resources); err != nil {
		return nil, err
	}
	return &res, nil
}

// ---- recordings ----

func (ds *MeetingDataStore) Recordings() ([]models.Recording, error) {
	recordings, _, err := loadList[models.Recording](ds, collectionRecordings)
	return recordings, err
}

// ---- lifecycle ----

// Clear deletes every key in this meeting's namespace. Other meetings
// are untouched.
func (ds *MeetingDataStore) Clear() error {
	keys, err := ds.kv.Keys(ds.prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := ds.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
