package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/repositories/kv"
	"github.com/dmitrijs2005/jabuspark/internal/common"
	"github.com/dmitrijs2005/jabuspark/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepo fails every call with err.
type failingRepo struct{ err error }

func (f failingRepo) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error { return f.err }
func (f failingRepo) SetMany(context.Context, map[string][]byte) error { return f.err }
func (f failingRepo) Delete(context.Context, string) error { return f.err }
func (f failingRepo) DeleteMany(context.Context, ...string) error { return f.err }
func (f failingRepo) List(context.Context) (map[string][]byte, error) { return nil, f.err }
func (f failingRepo) Clear(context.Context) error { return f.err }

func newStore(t *testing.T) (*Store, *kv.MemoryRepository) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	return NewStore(repo, logging.Nop()), repo
}

func TestSetSession_RoundTripNormalizes(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "T1", models.User{ID: "1", Name: "Ada", Role: "Student"}))

	tok, ok := s.GetToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "T1", tok)

	u, ok := s.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, models.FlexID("1"), u.ID)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "student", u.Role)
}

func TestGetUser_DefaultsNameAndRole(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "T", models.User{ID: "5"}))

	u, ok := s.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, common.DefaultDisplayName, u.Name)
	assert.Equal(t, common.DefaultRole, u.Role)
}

func TestGetUser_NormalizesRawStoredValue(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, common.UserStorageKey, []byte(`{"id":2,"name":"Grace","role":"ADMIN","faculty":"Science"}`)))

	u, ok := s.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", u.Role)
	assert.Contains(t, u.Extra, "faculty")
}

func TestClearSession_RemovesBothKeys(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSession(ctx, "T1", models.User{ID: "1"}))
	require.NoError(t, s.ClearSession(ctx))

	_, ok := s.GetToken(ctx)
	assert.False(t, ok)
	_, ok = s.GetUser(ctx)
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetUser_MalformedIsAbsentAndLogged(t *testing.T) {
	var buf bytes.Buffer
	log := logging.FromSlog(slog.New(slog.NewTextHandler(&buf, nil)))
	repo := kv.NewMemoryRepository()
	s := NewStore(repo, log)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, common.UserStorageKey, []byte(`{not json`)))

	u, ok := s.GetUser(ctx)
	assert.False(t, ok)
	assert.Nil(t, u)
	assert.Contains(t, buf.String(), "stored user is malformed")
}

func TestGetUser_NullIsAbsent(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, common.UserStorageKey, []byte(`null`)))

	_, ok := s.GetUser(ctx)
	assert.False(t, ok)
}

func TestGetToken_EmptyValueIsAbsent(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, common.TokenStorageKey, []byte{}))

	_, ok := s.GetToken(ctx)
	assert.False(t, ok)
}

func TestNilRepository_ReadsAbsentWritesNoop(t *testing.T) {
	s := NewStore(nil, nil)
	ctx := context.Background()

	var events []EventKind
	s.Subscribe(func(_ context.Context, ev Event) { events = append(events, ev.Kind) })

	require.NoError(t, s.SetSession(ctx, "T1", models.User{ID: "1"}))
	_, ok := s.GetToken(ctx)
	assert.False(t, ok)
	_, ok = s.GetUser(ctx)
	assert.False(t, ok)

	require.NoError(t, s.ClearSession(ctx))
	assert.Equal(t, []EventKind{EventSessionSet, EventSessionCleared}, events)
}

func TestFailingRepository(t *testing.T) {
	boom := errors.New("disk gone")
	s := NewStore(failingRepo{err: boom}, logging.Nop())
	ctx := context.Background()

	notified := false
	s.Subscribe(func(context.Context, Event) { notified = true })

	err := s.SetSession(ctx, "T", models.User{})
	require.ErrorIs(t, err, boom)
	assert.False(t, notified, "failed write must not notify")

	require.ErrorIs(t, s.ClearSession(ctx), boom)

	_, ok := s.GetToken(ctx)
	assert.False(t, ok, "read failures are absent, never errors")
	_, ok = s.GetUser(ctx)
	assert.False(t, ok)
}

func TestSubscribe_NotifiesSynchronouslyAndUnsubscribes(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	var got []string
	unsubA := s.Subscribe(func(_ context.Context, ev Event) { got = append(got, "a:"+ev.Kind.String()) })
	s.Subscribe(func(_ context.Context, ev Event) { got = append(got, "b:"+ev.Kind.String()) })

	require.NoError(t, s.SetSession(ctx, "T", models.User{}))
	assert.Equal(t, []string{"a:set", "b:set"}, got)

	unsubA()
	unsubA()

	require.NoError(t, s.ClearSession(ctx))
	assert.Equal(t, []string{"a:set", "b:set", "b:cleared"}, got)
}

func TestSubscribe_ListenerSeesNewState(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	var seen string
	s.Subscribe(func(ctx context.Context, _ Event) {
		seen, _ = s.GetToken(ctx)
	})

	require.NoError(t, s.SetSession(ctx, "T9", models.User{}))
	assert.Equal(t, "T9", seen)
}

func TestSubscribe_UnsubscribeFromInsideListener(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	calls := 0
	var unsub func()
	unsub = s.Subscribe(func(context.Context, Event) {
		calls++
		unsub()
	})

	require.NoError(t, s.SetSession(ctx, "T", models.User{}))
	require.NoError(t, s.SetSession(ctx, "T", models.User{}))
	assert.Equal(t, 1, calls)
}

func TestConcurrentSetSession_LastWriteWins(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := models.IDFromInt(int64(i))
			assert.NoError(t, s.SetSession(ctx, fmt.Sprintf("T%d", i), models.User{ID: id}))
		}(i)
	}
	wg.Wait()

	tok, ok := s.GetToken(ctx)
	require.True(t, ok)
	u, ok := s.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "T"+u.ID.String(), tok, "token and user must come from the same write")
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "set", EventSessionSet.String())
	assert.Equal(t, "cleared", EventSessionCleared.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
