package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPageview(t *testing.T) {
	s := NewStore(10)
	s.RecordPageview("/", "ses-1")
	s.RecordPageview("/", "ses-1")
	s.RecordPageview("/galeria", "ses-2")
	s.RecordPageview("/galeria", "")

	sum := s.Snapshot()
	day := time.Now().Format("2006-01-02")
	require.Contains(t, sum.Pageviews, day)
	assert.Equal(t, 2, sum.Pageviews[day]["/"])
	assert.Equal(t, 2, sum.Pageviews[day]["/galeria"])
	assert.Equal(t, 2, sum.Sessions, "empty session IDs are not tracked")
}

func TestEventLogDropsOldestAtCap(t *testing.T) {
	s := NewStore(3)
	for i := 0; i < 5; i++ {
		s.RecordEvent(fmt.Sprintf("ev-%d", i), nil)
	}

	sum := s.Snapshot()
	require.Len(t, sum.Events, 3)
	assert.Equal(t, "ev-2", sum.Events[0].Event)
	assert.Equal(t, "ev-4", sum.Events[2].Event)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(10)
	s.RecordPageview("/", "a")
	sum := s.Snapshot()

	day := time.Now().Format("2006-01-02")
	sum.Pageviews[day]["/"] = 99
	s.RecordEvent("later", nil)

	fresh := s.Snapshot()
	assert.Equal(t, 1, fresh.Pageviews[day]["/"])
	assert.Len(t, sum.Events, 0)
}
