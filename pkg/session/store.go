package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store はブラウザごとの Session を UUID で保持します。
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	opts     Options
}

// NewStore は新しい Session の生成に使う依存関係を受け取ります。
func NewStore(opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create は新しい Session を作り、その ID を返します。
func (s *Store) Create() (string, *Session, error) {
	sess, err := New(s.opts)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return id, sess, nil
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep は idle 以上操作されていない Session を破棄し、破棄した数を返します。
// 生成中の Session は対象外です。
func (s *Store) Sweep(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := s.opts.Now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.State() == StateProcessing {
			continue
		}
		if sess.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
