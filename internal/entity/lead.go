package entity

import (
	"context"
	"errors"
	"time"
)

// Status do lead no funil de vendas. Qualquer outro valor é rejeitado na borda.
const (
	StatusNovo     = "Novo"
	StatusAgendado = "Agendado"
	StatusVendido  = "Vendido"
	StatusPerdido  = "Perdido"
)

// Defaults aplicados quando a LP não envia o campo.
const (
	DefaultLeadName      = "Paciente não identificado"
	DefaultLeadPhone     = "Não informado"
	DefaultTreatmentType = "Consulta Geral"
	DefaultUTMSource     = "direto"
)

// ErrStorageUnavailable: a conexão com o banco nunca foi estabelecida no boot.
// Gravações falham com esse erro; a listagem degrada para lista vazia.
var ErrStorageUnavailable = errors.New("conexão com o banco de dados não estabelecida")

type Lead struct {
	UniqueID string `json:"id_unico" bson:"id_unico"`
	UserID   string `json:"user_id" bson:"user_id"`

	Name          string `json:"nome" bson:"nome"`
	Phone         string `json:"telefone_lead" bson:"telefone_lead"`
	TreatmentType string `json:"tipo_tratamento" bson:"tipo_tratamento"`

	UTMSource   string `json:"utm_source" bson:"utm_source"`
	UTMMedium   string `json:"utm_medium,omitempty" bson:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty" bson:"utm_campaign,omitempty"`
	UTMContent  string `json:"utm_content,omitempty" bson:"utm_content,omitempty"`

	Status    string  `json:"status" bson:"status"`
	SaleValue float64 `json:"valor_venda" bson:"valor_venda"`

	// Preenchido apenas pelo update do dashboard, nunca no ingest.
	ScheduledAt string `json:"data_agendamento,omitempty" bson:"data_agendamento,omitempty"`

	// Timestamp é gravado como string ISO-8601: ordenar por comparação
	// lexicográfica equivale a ordenar por data.
	Timestamp    string `json:"timestamp" bson:"timestamp"`
	ReadableDate string `json:"data_legivel" bson:"data_legivel"`
}

// Factory: aplica os defaults do rastreador e carimba o horário do ingest.
func NewLead(uniqueID, userID string, now time.Time) *Lead {
	return &Lead{
		UniqueID:      uniqueID,
		UserID:        userID,
		Name:          DefaultLeadName,
		Phone:         DefaultLeadPhone,
		TreatmentType: DefaultTreatmentType,
		UTMSource:     DefaultUTMSource,
		Status:        StatusNovo,
		SaleValue:     0,
		Timestamp:     now.Format(time.RFC3339),
		ReadableDate:  now.Format("02/01 15:04"),
	}
}

func (l *Lead) Validate() error {
	if l.UniqueID == "" {
		return errors.New("id_unico is required")
	}
	if l.UserID == "" {
		return errors.New("user_id is required")
	}
	if !ValidLeadStatus(l.Status) {
		return errors.New("status is invalid")
	}
	if l.SaleValue < 0 {
		return errors.New("valor_venda must not be negative")
	}
	return nil
}

func ValidLeadStatus(s string) bool {
	switch s {
	case StatusNovo, StatusAgendado, StatusVendido, StatusPerdido:
		return true
	}
	return false
}

type LeadRepositoryInterface interface {

	// Upsert grava o documento inteiro na chave id_unico (sobrescreve se já existir).
	Upsert(ctx context.Context, lead *Lead) error

	// FindByID devolve (nil, nil) quando o id não existe.
	FindByID(ctx context.Context, uniqueID string) (*Lead, error)

	// UpdateFields faz merge parcial dos campos informados no documento.
	UpdateFields(ctx context.Context, uniqueID string, fields map[string]any) error

	FindAll(ctx context.Context) ([]*Lead, error)
}
