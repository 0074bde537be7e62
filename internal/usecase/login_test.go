package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/profitlens/roi-master-api/internal/entity"
	"github.com/profitlens/roi-master-api/internal/usecase"
)

func TestLogin_ExistingUserReturnsStoredRecord(t *testing.T) {
	stored := &entity.User{
		UID:       "firebase-123",
		Email:     "antigo@exemplo.com",
		Name:      "Dr. João",
		Plan:      "pro",
		CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}

	repo := new(MockUserRepository)
	repo.On("FindByUID", mock.Anything, "firebase-123").Return(stored, nil)

	uc := usecase.NewLoginUseCase(repo)

	// Email diferente no payload não atualiza nada.
	output, err := uc.Execute(context.Background(), usecase.LoginInput{
		UID:   "firebase-123",
		Email: "novo@exemplo.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bem-vindo de volta!", output.Message)
	assert.False(t, output.Created)
	assert.Equal(t, stored, output.User)
	assert.Equal(t, "antigo@exemplo.com", output.User.Email)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_FirstLoginCreatesAccount(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUID", mock.Anything, "firebase-999").Return(nil, nil)

	var created *entity.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	uc := usecase.NewLoginUseCase(repo)

	output, err := uc.Execute(context.Background(), usecase.LoginInput{
		UID:   "firebase-999",
		Email: "novo@exemplo.com",
	})

	assert.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, "Conta criada com sucesso!", output.Message)

	assert.Equal(t, "firebase-999", created.UID)
	assert.Equal(t, "novo@exemplo.com", created.Email)
	assert.Equal(t, entity.DefaultUserName, created.Name)
	assert.Equal(t, entity.DefaultUserPlan, created.Plan)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestLogin_FirstLoginKeepsProvidedName(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUID", mock.Anything, "firebase-7").Return(nil, nil)

	var created *entity.User
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	uc := usecase.NewLoginUseCase(repo)

	_, err := uc.Execute(context.Background(), usecase.LoginInput{
		UID:   "firebase-7",
		Email: "dra@exemplo.com",
		Name:  "Dra. Ana",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Dra. Ana", created.Name)
}

func TestLogin_CreateErrorPropagates(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUID", mock.Anything, "firebase-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write conflict"))

	uc := usecase.NewLoginUseCase(repo)

	output, err := uc.Execute(context.Background(), usecase.LoginInput{
		UID:   "firebase-1",
		Email: "a@b.com",
	})

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
	assert.Equal(t, usecase.CodeStorageWrite, err.(*usecase.TechnicalError).Code)
}

func TestLogin_StorageUnavailable(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUID", mock.Anything, "firebase-1").Return(nil, entity.ErrStorageUnavailable)

	uc := usecase.NewLoginUseCase(repo)

	output, err := uc.Execute(context.Background(), usecase.LoginInput{
		UID:   "firebase-1",
		Email: "a@b.com",
	})

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, usecase.CodeStorageUnavailable, err.(*usecase.DomainError).Code)
}
