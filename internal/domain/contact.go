package domain

import "time"

const (
	MessageKindContact = "contact"
	MessageKindEnquiry = "enquiry"
)

// ContactMessage is a submission from the contact form or a course enquiry
// form. Both flows share the shape; Kind tells them apart.
type ContactMessage struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CourseID  string    `json:"course_id,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
