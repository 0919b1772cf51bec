package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, CreateSessionRequest{
		SessionType: "work",
		Duration:    1500,
		TaskTitle:   strPtr("write docs"),
		Date:        "2024-02-10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Equal(t, "work", sess.SessionType)
	require.Equal(t, 1500, sess.Duration)
	require.False(t, sess.Completed)
	require.Nil(t, sess.StartedAt)
	require.Nil(t, sess.EndedAt)

	got, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess, got)
}

func TestUpdateSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, CreateSessionRequest{
		SessionType: "work", Duration: 1500, Date: "2024-02-10",
	})
	require.NoError(t, err)

	ended := Timestamp{time.Date(2024, 2, 10, 10, 30, 0, 0, time.UTC)}
	updated, err := s.UpdateSession(ctx, UpdateSessionRequest{
		ID: sess.ID, Completed: true, Notes: strPtr("good focus"), EndedAt: &ended,
	})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, "good focus", *updated.Notes)
	require.NotNil(t, updated.EndedAt)
	require.True(t, updated.EndedAt.Equal(ended.Time))
	require.Equal(t, sess.CreatedAt, updated.CreatedAt)
}

func TestListSessionsByDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, st := range []string{"work", "short_break"} {
		_, err := s.CreateSession(ctx, CreateSessionRequest{
			SessionType: st, Duration: 300, Date: "2024-02-10",
		})
		require.NoError(t, err)
	}
	_, err := s.CreateSession(ctx, CreateSessionRequest{
		SessionType: "work", Duration: 1500, Date: "2024-02-11",
	})
	require.NoError(t, err)

	sessions, err := s.ListSessionsByDate(ctx, "2024-02-10")
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	ranged, err := s.ListSessionsByDateRange(ctx, "2024-02-10", "2024-02-11")
	require.NoError(t, err)
	require.Len(t, ranged, 3)
	require.Equal(t, "2024-02-10", ranged[0].Date)
	require.Equal(t, "2024-02-11", ranged[2].Date)
}

func TestSessionStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mk := func(sessionType string, duration int, completed bool) {
		sess, err := s.CreateSession(ctx, CreateSessionRequest{
			SessionType: sessionType, Duration: duration, Date: "2024-02-10",
		})
		require.NoError(t, err)
		if completed {
			_, err = s.UpdateSession(ctx, UpdateSessionRequest{ID: sess.ID, Completed: true})
			require.NoError(t, err)
		}
	}
	mk("work", 1500, true)
	mk("work", 1500, true)
	mk("work", 1500, false)
	mk("short_break", 300, true)

	completed, focus, err := s.SessionStats(ctx, "2024-02-01", "2024-02-28")
	require.NoError(t, err)
	require.Equal(t, 2, completed)
	require.Equal(t, int64(3000), focus)
}

func TestUpdateSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.GetSettings(ctx)
	require.NoError(t, err)

	after, err := s.UpdateSettings(ctx, UpdateSettingsRequest{
		WorkTime: 50, ShortBreak: 10, LongBreak: 30, LongBreakInterval: 2,
		AutoStartBreaks: true, AutoStartWork: true, NotificationEnabled: false,
	})
	require.NoError(t, err)
	require.Equal(t, before.ID, after.ID)
	require.Equal(t, 50, after.WorkTime)
	require.Equal(t, 10, after.ShortBreak)
	require.Equal(t, 30, after.LongBreak)
	require.Equal(t, 2, after.LongBreakInterval)
	require.True(t, after.AutoStartBreaks)
	require.True(t, after.AutoStartWork)
	require.False(t, after.NotificationEnabled)
	require.Equal(t, before.CreatedAt, after.CreatedAt)
	require.False(t, after.UpdatedAt.Before(before.UpdatedAt.Time))

	// Still exactly one row.
	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM pomodoro_settings`).Scan(&count))
	require.Equal(t, 1, count)
}
