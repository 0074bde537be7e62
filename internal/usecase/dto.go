package usecase

import "github.com/profitlens/roi-master-api/internal/entity"

// Corpo enviado pelo tracker.js das landing pages.
type TrackLeadInput struct {
	UniqueID string `json:"id_unico"`
	UserID   string `json:"user_id"`

	Name          string `json:"nome"`
	Phone         string `json:"telefone_lead"`
	TreatmentType string `json:"tipo_tratamento"`

	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`

	Status    string  `json:"status"`
	SaleValue float64 `json:"valor_venda"`
}

type TrackLeadOutput struct {
	Status       string `json:"status"`
	ReceivedName string `json:"nome_recebido"`
}

// Patch do dashboard. Status e valor_venda sempre sobrescrevem o documento;
// data_agendamento só é gravada quando vem preenchida.
type UpdateLeadInput struct {
	Status      string  `json:"status"`
	SaleValue   float64 `json:"valor_venda"`
	ScheduledAt string  `json:"data_agendamento"`
}

type LoginInput struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"nome"`
}

type LoginOutput struct {
	Status  string       `json:"status"`
	Message string       `json:"mensagem"`
	User    *entity.User `json:"usuario"`

	// true apenas no primeiro login (ramo de criação). Não vai no JSON.
	Created bool `json:"-"`
}
