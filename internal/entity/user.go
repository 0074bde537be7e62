package entity

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultUserName = "Usuário Novo"
	DefaultUserPlan = "gratis"
)

// Entidade: User (conta do dono do dashboard, uid vem do provedor de identidade)
type User struct {
	UID       string    `json:"uid" bson:"uid"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"nome" bson:"nome"`
	Plan      string    `json:"plano" bson:"plano"`
	CreatedAt time.Time `json:"criado_em" bson:"criado_em"`
}

// Factory: usada apenas no primeiro login. Logins seguintes devolvem o
// documento já gravado, sem atualizar nada.
func NewUser(uid, email, name string, now time.Time) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}

	user := &User{
		UID:       uid,
		Email:     email,
		Name:      name,
		Plan:      DefaultUserPlan,
		CreatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) Validate() error {
	if u.UID == "" {
		return errors.New("uid is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type UserRepositoryInterface interface {

	// FindByUID devolve (nil, nil) quando o uid nunca logou.
	FindByUID(ctx context.Context, uid string) (*User, error)

	Create(ctx context.Context, user *User) error
}
