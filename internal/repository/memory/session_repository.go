package memory

import (
	"strconv"
	"sync"

	"grafica-order-bot/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps in-progress dialogue sessions. Sessions live
// exactly as long as the conversation, so entries never expire on their
// own; they are deleted on the terminal transition or on /cancel.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
		locks: make(map[int64]*sync.Mutex),
	}
}

// Lock serializes turns for one user. Different users never contend.
// The transport already delivers per-chat updates one at a time; the
// lock is there so an overlapping delivery cannot lose an update.
func (r *SessionRepository) Lock(userId int64) func() {
	r.mu.Lock()
	l, ok := r.locks[userId]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userId] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(key(session.UserId), session, cache.NoExpiration)
}

func (r *SessionRepository) Get(userId int64) (*entity.Session, bool) {
	if x, found := r.cache.Get(key(userId)); found {
		return x.(*entity.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(userId int64) {
	r.cache.Delete(key(userId))
}

func key(userId int64) string {
	return strconv.FormatInt(userId, 10)
}
