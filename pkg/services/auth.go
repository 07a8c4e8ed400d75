package services

import (
	"time"

	"github.com/tastebook/tastebook/pkg/data"
)

// Auth exposes the signed-in state backed by the local session store.
type Auth struct {
	repo    *data.Repository
	session *data.Session
}

func NewAuth(repo *data.Repository) (*Auth, error) {
	session, err := repo.GetSession()
	if err != nil {
		return nil, err
	}
	return &Auth{repo: repo, session: session}, nil
}

func (a *Auth) IsAuthenticated() bool {
	return a.session != nil
}

// CurrentUser returns the signed-in user, or the zero User when
// anonymous.
func (a *Auth) CurrentUser() data.User {
	if a.session == nil {
		return data.User{}
	}
	return data.User{ID: a.session.UserID, Username: a.session.Username}
}

func (a *Auth) Token() string {
	if a.session == nil {
		return ""
	}
	return a.session.Token
}

func (a *Auth) SignIn(user *data.User, token string) error {
	session := &data.Session{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
		SavedAt:  time.Now(),
	}
	if err := a.repo.SaveSession(session); err != nil {
		return err
	}
	a.session = session
	return nil
}

func (a *Auth) SignOut() error {
	if err := a.repo.ClearSession(); err != nil {
		return err
	}
	a.session = nil
	return nil
}
