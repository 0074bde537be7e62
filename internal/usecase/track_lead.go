package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/profitlens/roi-master-api/internal/entity"
	"github.com/profitlens/roi-master-api/internal/infra/queue"
)

type TrackLeadUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue LeadEventProducerInterface
}

func NewTrackLeadUseCase(repo entity.LeadRepositoryInterface, producer LeadEventProducerInterface) *TrackLeadUseCase {
	return &TrackLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

// Execute grava (ou sobrescreve) o lead na chave id_unico e devolve o nome
// recebido como confirmação. Erro de gravação sempre sobe para o caller.
func (uc *TrackLeadUseCase) Execute(ctx context.Context, input TrackLeadInput) (*TrackLeadOutput, error) {
	lead := entity.NewLead(input.UniqueID, input.UserID, time.Now())

	if input.Name != "" {
		lead.Name = input.Name
	}
	if input.Phone != "" {
		lead.Phone = input.Phone
	}
	if input.TreatmentType != "" {
		lead.TreatmentType = input.TreatmentType
	}
	if input.UTMSource != "" {
		lead.UTMSource = input.UTMSource
	}
	lead.UTMMedium = input.UTMMedium
	lead.UTMCampaign = input.UTMCampaign
	lead.UTMContent = input.UTMContent
	if input.Status != "" {
		lead.Status = input.Status
	}
	lead.SaleValue = input.SaleValue

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	if err := uc.Repo.Upsert(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			return nil, &DomainError{Code: CodeStorageUnavailable, Message: err.Error()}
		}
		return nil, &TechnicalError{Code: CodeStorageWrite, Message: err.Error()}
	}

	log.Printf("✅ Lead salvo com nome: %s", lead.Name)

	// Evento para consumidores externos. Best effort: falha aqui não pode
	// derrubar o ingest que já foi persistido.
	if uc.Queue != nil {
		payload := queue.LeadTrackedPayload{
			EventID:   uuid.New().String(),
			UniqueID:  lead.UniqueID,
			UserID:    lead.UserID,
			Name:      lead.Name,
			Status:    lead.Status,
			UTMSource: lead.UTMSource,
			Timestamp: lead.Timestamp,
		}
		if err := uc.Queue.PublishLeadTracked(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar evento de lead %s: %v", lead.UniqueID, err)
		}
	}

	return &TrackLeadOutput{Status: "success", ReceivedName: lead.Name}, nil
}
