package usecase

import (
	"context"

	"github.com/profitlens/roi-master-api/internal/infra/queue"
)

// Publicação de eventos de lead para consumidores externos (relatórios, CRM).
// Opcional: sem broker configurado o campo fica nil e o ingest segue normal.
type LeadEventProducerInterface interface {
	PublishLeadTracked(ctx context.Context, payload queue.LeadTrackedPayload) error
}
