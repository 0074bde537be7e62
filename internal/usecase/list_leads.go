package usecase

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/profitlens/roi-master-api/internal/entity"
)

type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute lista todos os leads, mais recentes primeiro. Leitura é best effort:
// qualquer falha degrada para lista vazia em vez de derrubar o dashboard.
func (uc *ListLeadsUseCase) Execute(ctx context.Context) []*entity.Lead {
	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		if !errors.Is(err, entity.ErrStorageUnavailable) {
			log.Printf("⚠️ Falha ao listar leads, devolvendo lista vazia: %v", err)
		}
		return []*entity.Lead{}
	}

	// Documento sem timestamp ordena como string vazia e cai para o fim.
	// TODO: o dashboard quer agendamentos próximos no topo; hoje a ordenação
	// é só por timestamp decrescente.
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Timestamp > leads[j].Timestamp
	})

	if leads == nil {
		leads = []*entity.Lead{}
	}
	return leads
}
