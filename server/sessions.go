package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	stockviewer "github.com/shamsherkhan80/Real-time-stock-price-viewer"
)

const (
	sessionCookie = "sid"

	// idle sessions are dropped after this much inactivity; losing one only
	// costs the browser another refresh click
	defaultSessionTTL = 30 * time.Minute

	// hard cap so cookie-less clients cannot grow the map without bound
	defaultMaxSessions = 4096
)

type sessionEntry struct {
	sess     *stockviewer.Session
	lastSeen time.Time
}

// sessionStore keys dashboard sessions by a uuid cookie so the refreshed
// state is per browser. Expired entries are pruned on access and the oldest
// entry is evicted once the cap is reached.
type sessionStore struct {
	mu       sync.Mutex
	viewer   *stockviewer.Viewer
	sessions map[string]*sessionEntry

	ttl         time.Duration
	maxSessions int
	nowFunc     func() time.Time
}

func newSessionStore(viewer *stockviewer.Viewer) *sessionStore {
	return &sessionStore{
		viewer:      viewer,
		sessions:    make(map[string]*sessionEntry),
		ttl:         defaultSessionTTL,
		maxSessions: defaultMaxSessions,
		nowFunc:     time.Now,
	}
}

// session resolves the caller's session, creating one and setting the cookie
// on a miss.
func (st *sessionStore) session(w http.ResponseWriter, r *http.Request) *stockviewer.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.nowFunc()
	st.pruneLocked(now)

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if entry, ok := st.sessions[cookie.Value]; ok {
			entry.lastSeen = now
			return entry.sess
		}
	}

	if len(st.sessions) >= st.maxSessions {
		st.evictOldestLocked()
	}

	id := uuid.NewString()
	sess := st.viewer.NewSession()
	st.sessions[id] = &sessionEntry{
		sess:     sess,
		lastSeen: now,
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return sess
}

func (st *sessionStore) pruneLocked(now time.Time) {
	for id, entry := range st.sessions {
		if now.Sub(entry.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}

func (st *sessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, entry := range st.sessions {
		if oldestID == "" || entry.lastSeen.Before(oldest) {
			oldestID = id
			oldest = entry.lastSeen
		}
	}
	if oldestID != "" {
		delete(st.sessions, oldestID)
	}
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
