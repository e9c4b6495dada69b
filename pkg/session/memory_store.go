package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"guidechat/internal/conversation"
	mem "guidechat/pkg/memcache"
	"guidechat/pkg/utils"
)

// MemoryStore keeps state server-side; the cookie only carries a signed
// session ID.
type MemoryStore struct {
	jar     cookieJar
	entries mem.SessionEntryStore[conversation.State]
}

func NewMemoryStore(signer *utils.Signer, entries mem.SessionEntryStore[conversation.State], opts CookieOptions) *MemoryStore {
	return &MemoryStore{jar: cookieJar{signer: signer, opts: opts}, entries: entries}
}

func (s *MemoryStore) Load(c *gin.Context) conversation.State {
	claims, ok := s.jar.read(c)
	if !ok || claims.ID == "" {
		return conversation.NewState()
	}
	state, ok := s.entries.Get(claims.ID)
	if !ok {
		return conversation.NewState()
	}
	return state
}

func (s *MemoryStore) Save(c *gin.Context, state conversation.State) error {
	id := c.GetString(issuedIDKey)
	if id == "" {
		if claims, ok := s.jar.read(c); ok && claims.ID != "" {
			id = claims.ID
		} else {
			id = uuid.NewString()
			c.Set(issuedIDKey, id)
		}
	}

	s.entries.Set(id, state, s.jar.opts.TTL)

	claims := utils.SessionClaims{}
	claims.ID = id
	return s.jar.write(c, claims)
}

// Reset drops the old server-side entry and starts a new session ID.
func (s *MemoryStore) Reset(c *gin.Context, state conversation.State) error {
	if claims, ok := s.jar.read(c); ok && claims.ID != "" {
		s.entries.Delete(claims.ID)
	}
	id := uuid.NewString()
	c.Set(issuedIDKey, id)
	s.entries.Set(id, state, s.jar.opts.TTL)

	claims := utils.SessionClaims{}
	claims.ID = id
	return s.jar.write(c, claims)
}

const issuedIDKey = "session_id"
