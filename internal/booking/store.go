package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"perubus/internal/domain"
)

// Session is one buyer's flow plus the lock that serializes the gin handlers
// touching it. The flow itself stays single-threaded.
type Session struct {
	ID      string
	Flow    *Flow
	mu      sync.Mutex
	touched time.Time
}

// WithLock runs fn with exclusive access to the session's flow.
func (s *Session) WithLock(fn func(f *Flow) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	return fn(s.Flow)
}

// Store keeps booking sessions in memory, keyed by UUID. Sessions are cheap;
// stale ones are swept opportunistically on create.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	maxIdle  time.Duration
}

func NewStore() *Store {
	return &Store{
		sessions: map[string]*Session{},
		maxIdle:  30 * time.Minute,
	}
}

func (st *Store) Create(collab Collaborator) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	for id, s := range st.sessions {
		if now.Sub(s.touched) > st.maxIdle {
			delete(st.sessions, id)
		}
	}

	s := &Session{
		ID:      uuid.NewString(),
		Flow:    NewFlow(collab),
		touched: now,
	}
	st.sessions[s.ID] = s
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "sesion de compra"}
	}
	return s, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
