package session

import (
	"github.com/gin-gonic/gin"

	"guidechat/internal/conversation"
	"guidechat/pkg/utils"
)

// CookieStore carries the whole state inside the signed session cookie.
type CookieStore struct {
	jar cookieJar
}

func NewCookieStore(signer *utils.Signer, opts CookieOptions) *CookieStore {
	return &CookieStore{jar: cookieJar{signer: signer, opts: opts}}
}

func (s *CookieStore) Load(c *gin.Context) conversation.State {
	claims, ok := s.jar.read(c)
	if !ok || claims.Progress < 0 {
		return conversation.NewState()
	}
	responses := claims.Responses
	if responses == nil {
		responses = []string{}
	}
	return conversation.State{NextQuestion: claims.Progress, Responses: responses}
}

func (s *CookieStore) Save(c *gin.Context, state conversation.State) error {
	return s.jar.write(c, utils.SessionClaims{
		Progress:  state.NextQuestion,
		Responses: state.Responses,
	})
}

func (s *CookieStore) Reset(c *gin.Context, state conversation.State) error {
	return s.Save(c, state)
}
