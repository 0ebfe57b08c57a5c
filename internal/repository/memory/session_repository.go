package memory

import (
	"time"

	"shop-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository creates the session store. Sessions expire after ttl
// of inactivity (1 hour when ttl is not positive) and are purged every 10 minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the session for the given conversation, creating an
// empty one on first use. A blank id maps to the shared default session.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if sessionID == "" {
		sessionID = store.DefaultSessionID
	}
	if s, found := r.Get(sessionID); found {
		return s
	}
	s := store.NewSession(sessionID)
	r.Save(s)
	return s
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
