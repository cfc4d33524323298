// Package enrollment covers the pre-payment enrollment flow: student
// form validation, short-lived enrollment sessions, and the course
// access seam invoked after a successful capture.
package enrollment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Advisory only; nothing enforces the expiry server-side.
const SessionTTL = 30 * time.Minute

type StudentInfo struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Company          string `json:"company,omitempty"`
	Experience       string `json:"experience"`
	Goals            string `json:"goals,omitempty"`
	MarketingConsent bool   `json:"marketingConsent"`
}

type Session struct {
	SessionID   string      `json:"sessionId"`
	StudentInfo StudentInfo `json:"studentInfo"`
	CourseID    string      `json:"courseId"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}

// NewSession builds a request-scoped enrollment session. The id carries
// a millisecond timestamp plus a random suffix so concurrent requests
// in the same millisecond cannot collide.
func NewSession(info StudentInfo, courseID string) Session {
	now := time.Now().UTC()

	id := fmt.Sprintf(
		"enroll_%s_%d_%s",
		courseID,
		now.UnixMilli(),
		uuid.NewString()[:8],
	)

	return Session{
		SessionID:   id,
		StudentInfo: info,
		CourseID:    courseID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(SessionTTL),
	}
}
