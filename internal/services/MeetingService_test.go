package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msd/internal/models"
	"msd/internal/storage"
)

func newService() MeetingServiceInterface {
	return NewMeetingService(storage.NewMemoryStore())
}

func TestMeetingService_EmptyIDUsesDefaultMeeting(t *testing.T) {
	ms := newService()

	messages, err := ms.ListChatMessages("", "")
	require.NoError(t, err)
	assert.Len(t, messages, 10)

	assert.Equal(t, []string{DefaultMeetingID}, ms.Meetings())
}

func TestMeetingService_StoresAreCachedPerMeeting(t *testing.T) {
	ms := newService()

	_, err := ms.ListChatMessages("alpha", "")
	require.NoError(t, err)
	_, err = ms.ListAgenda("alpha")
	require.NoError(t, err)
	_, err = ms.ListTasks("beta")
	require.NoError(t, err)

	assert.Equal(t, 2, ms.MeetingCount())
	assert.Equal(t, []string{"alpha", "beta"}, ms.Meetings())
}

func TestMeetingService_KeyCount(t *testing.T) {
	ms := newService()

	_, err := ms.ListChatMessages("alpha", "")
	require.NoError(t, err)
	_, err = ms.ListChatMessages("beta", "")
	require.NoError(t, err)

	// four seeded collections per meeting
	assert.Equal(t, 8, ms.KeyCount())
}

func TestMeetingService_WriteThenRead(t *testing.T) {
	ms := newService()

	note, err := ms.SavePersonalNote("alpha", &models.NoteDraft{Content: "remember this"})
	require.NoError(t, err)

	notes, err := ms.ListPersonalNotes("alpha")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	// other meetings never see it
	other, err := ms.ListPersonalNotes("beta")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMeetingService_ClearMeetingDataReseeds(t *testing.T) {
	ms := newService()

	_, err := ms.AddChatMessage("alpha", &models.MessageDraft{UserID: "u1", Username: "A", Message: "extra"})
	require.NoError(t, err)

	messages, err := ms.ListChatMessages("alpha", "")
	require.NoError(t, err)
	assert.Len(t, messages, 11)

	require.NoError(t, ms.ClearMeetingData("alpha"))
	assert.Equal(t, 0, ms.MeetingCount())

	// next access starts a fresh store with the demo seed only
	messages, err = ms.ListChatMessages("alpha", "")
	require.NoError(t, err)
	assert.Len(t, messages, 10)
}

func TestMeetingService_UpdateParticipantStatus(t *testing.T) {
	ms := newService()

	videoOff := true
	err := ms.UpdateParticipantStatus("alpha", "user4", &models.ParticipantUpdate{IsVideoOff: &videoOff})
	require.NoError(t, err)

	participants, err := ms.ListParticipants("alpha")
	require.NoError(t, err)
	for _, p := range participants {
		if p.ID == "user4" {
			assert.True(t, p.IsVideoOff)
		}
	}
}
