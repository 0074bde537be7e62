package usecase

import (
	"context"
	"errors"

	"github.com/profitlens/roi-master-api/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// Execute aplica o patch do dashboard sobre um lead existente.
// Status e valor_venda sempre sobrescrevem (mesmo quando o patch traz o
// default 0.0); data_agendamento só entra quando veio preenchida.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, uniqueID string, input UpdateLeadInput) error {
	existing, err := uc.Repo.FindByID(ctx, uniqueID)
	if err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			return &DomainError{Code: CodeStorageUnavailable, Message: err.Error()}
		}
		return &TechnicalError{Code: CodeStorageRead, Message: err.Error()}
	}
	if existing == nil {
		return &DomainError{Code: CodeNotFound, Message: "Lead não encontrado"}
	}

	fields := map[string]any{
		"status":      input.Status,
		"valor_venda": input.SaleValue,
	}
	if input.ScheduledAt != "" {
		fields["data_agendamento"] = input.ScheduledAt
	}

	if err := uc.Repo.UpdateFields(ctx, uniqueID, fields); err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			return &DomainError{Code: CodeStorageUnavailable, Message: err.Error()}
		}
		return &TechnicalError{Code: CodeStorageWrite, Message: err.Error()}
	}

	return nil
}
