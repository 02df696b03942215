package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"

	DefaultContactSubject = "Contact Form Submission"
)

// ContactMessage is a submission of the public contact form
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"column:name;type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"column:email;type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"column:subject;type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"column:message;type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"column:status;type:text;not null;index:idx_contact_messages_status"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
}
