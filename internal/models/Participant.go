package models

type ParticipantRole string

const (
	RoleHost    ParticipantRole = "Host"
	RoleCoHost  ParticipantRole = "Co-host"
	RoleTeacher ParticipantRole = "Teacher"
	RoleStudent ParticipantRole = "Student"
)

type Participant struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       ParticipantRole `json:"role"`
	IsOnline   bool            `json:"isOnline"`
	IsMuted    bool            `json:"isMuted"`
	IsVideoOff bool            `json:"isVideoOff"`
}

// ParticipantUpdate carries a partial field set. Nil fields are left
// untouched when applied.
type ParticipantUpdate struct {
	Name       *string          `json:"name"`
	Role       *ParticipantRole `json:"role"`
	IsOnline   *bool            `json:"isOnline"`
	IsMuted    *bool            `json:"isMuted"`
	IsVideoOff *bool            `json:"isVideoOff"`
}

func (u *ParticipantUpdate) ApplyTo(p *Participant) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.IsOnline != nil {
		p.IsOnline = *u.IsOnline
	}
	if u.IsMuted != nil {
		p.IsMuted = *u.IsMuted
	}
	if u.IsVideoOff != nil {
		p.IsVideoOff = *u.IsVideoOff
	}
}
