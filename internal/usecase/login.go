package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/profitlens/roi-master-api/internal/entity"
)

type LoginUseCase struct {
	Repo entity.UserRepositoryInterface
}

func NewLoginUseCase(repo entity.UserRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Repo: repo}
}

// Execute busca a conta pelo uid e cria uma nova no primeiro login.
// Conta existente volta intocada: email e nome do payload são ignorados.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	existing, err := uc.Repo.FindByUID(ctx, input.UID)
	if err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			return nil, &DomainError{Code: CodeStorageUnavailable, Message: err.Error()}
		}
		return nil, &TechnicalError{Code: CodeStorageRead, Message: err.Error()}
	}

	if existing != nil {
		return &LoginOutput{
			Status:  "sucesso",
			Message: "Bem-vindo de volta!",
			User:    existing,
		}, nil
	}

	user, err := entity.NewUser(input.UID, input.Email, input.Name, time.Now())
	if err != nil {
		return nil, err
	}

	// Corrida lookup-then-create: dois primeiros logins simultâneos do mesmo
	// uid podem ambos gravar; o último write vence no banco. Aceito aqui.
	if err := uc.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			return nil, &DomainError{Code: CodeStorageUnavailable, Message: err.Error()}
		}
		return nil, &TechnicalError{Code: CodeStorageWrite, Message: err.Error()}
	}

	log.Printf("🆕 Conta criada para uid %s (plano %s)", user.UID, user.Plan)

	return &LoginOutput{
		Status:  "sucesso",
		Message: "Conta criada com sucesso!",
		User:    user,
		Created: true,
	}, nil
}
