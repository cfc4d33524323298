package enrollment

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudent() StudentInfo {
	return StudentInfo{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Experience: "beginner",
	}
}

func TestNewSession_IDFormat(t *testing.T) {
	s := NewSession(validStudent(), "ai-foundations")

	pattern := regexp.MustCompile(`^enroll_ai-foundations_\d+_[0-9a-f]{8}$`)
	assert.Regexpf(t, pattern, s.SessionID, "unexpected session id %q", s.SessionID)
}

func TestNewSession_Expiry(t *testing.T) {
	s := NewSession(validStudent(), "applied-ai")

	assert.Equal(t, "applied-ai", s.CourseID)
	assert.Equal(t, s.CreatedAt.Add(30*time.Minute), s.ExpiresAt)
}

func TestNewSession_UniqueUnderConcurrency(t *testing.T) {
	const count = 100

	var (
		mu  sync.Mutex
		ids = make(map[string]bool, count)
		wg  sync.WaitGroup
	)

	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()

			s := NewSession(validStudent(), "ai-foundations")

			mu.Lock()
			ids[s.SessionID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	// ids generated in the same millisecond must still differ
	require.Len(t, ids, count)
}
