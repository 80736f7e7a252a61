package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore()
	id := s.New()

	assert.Empty(t, s.Get(id, KeyGoal))

	s.Set(id, KeyGoal, "write a launch email")
	s.Set(id, AnswerKey(0), "existing customers")
	assert.Equal(t, "write a launch email", s.Get(id, KeyGoal))
	assert.Equal(t, "existing customers", s.Get(id, AnswerKey(0)))
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	s := NewStore()
	a := s.New()
	b := s.New()
	assert.NotEqual(t, a, b)

	s.Set(a, KeyPrompt, "prompt A")
	assert.Empty(t, s.Get(b, KeyPrompt))
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	id := s.New()
	s.Set(id, KeyGoal, "something")

	s.Clear(id)
	assert.Empty(t, s.Get(id, KeyGoal))

	// Writes to a cleared session recreate it instead of panicking.
	s.Set(id, KeyGoal, "again")
	assert.Equal(t, "again", s.Get(id, KeyGoal))
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	id := s.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Set(id, AnswerKey(i), fmt.Sprintf("v%d", j))
				_ = s.Get(id, AnswerKey(i))
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		assert.Equal(t, "v49", s.Get(id, AnswerKey(i)))
	}
}

func TestAnswerKey(t *testing.T) {
	assert.Equal(t, "answer_0", AnswerKey(0))
	assert.Equal(t, "answer_7", AnswerKey(7))
}
