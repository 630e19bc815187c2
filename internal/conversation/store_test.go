package conversation

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turn(i int) Turn {
	return Turn{Role: RoleUser, Text: fmt.Sprintf("msg-%d", i), Timestamp: time.Unix(int64(i), 0)}
}

func TestWindow_MostRecentInOrder(t *testing.T) {
	s := NewStore()
	for i := 0; i < 7; i++ {
		s.Append("kitchen", turn(i))
	}

	for n := 0; n <= 9; n++ {
		w := s.Window("kitchen", n)
		want := n
		if want > 7 {
			want = 7
		}
		require.Len(t, w, want, "n=%d", n)
		for j, tr := range w {
			assert.Equal(t, fmt.Sprintf("msg-%d", 7-want+j), tr.Text)
		}
	}
	assert.Empty(t, s.Window("kitchen", -1))
}

func TestHistory_RetainsEverything(t *testing.T) {
	s := NewStore()
	for i := 0; i < 25; i++ {
		s.Append("", turn(i))
	}
	assert.Len(t, s.Window(DefaultSession, 10), 10)
	assert.Len(t, s.History(""), 25)
	assert.Equal(t, 25, s.Len(DefaultSession))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore()
	s.Append("a", turn(1))
	s.Append("b", turn(2), turn(3))

	assert.Equal(t, 1, s.Len("a"))
	assert.Equal(t, 2, s.Len("b"))
	assert.Equal(t, 0, s.Len("c"))
	assert.Empty(t, s.History("c"))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s := NewStore()
	s.Append("a", turn(1))

	w := s.Window("a", 5)
	w[0].Text = "changed"
	h := s.History("a")
	h[0].Text = "changed"

	assert.Equal(t, "msg-1", s.History("a")[0].Text)
}

func TestConcurrentAppend(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append("shared", turn(i))
			_ = s.Window("shared", 3)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len("shared"))
}
