package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/profitlens/roi-master-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateTrackLeadInput(input TrackLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.UniqueID) == "" {
		errors = append(errors, ValidationError{"id_unico", "is required"})
	}

	if strings.TrimSpace(input.UserID) == "" {
		errors = append(errors, ValidationError{"user_id", "is required"})
	}

	// Status ausente recebe o default "Novo"; presente tem que ser um dos quatro.
	if input.Status != "" && !entity.ValidLeadStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be Novo, Agendado, Vendido or Perdido"})
	}

	if input.SaleValue < 0 {
		errors = append(errors, ValidationError{"valor_venda", "must not be negative"})
	}

	return errors
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Status) == "" {
		errors = append(errors, ValidationError{"status", "is required"})
	} else if !entity.ValidLeadStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be Novo, Agendado, Vendido or Perdido"})
	}

	if input.SaleValue < 0 {
		errors = append(errors, ValidationError{"valor_venda", "must not be negative"})
	}

	if input.ScheduledAt != "" && !isValidDate(input.ScheduledAt) {
		errors = append(errors, ValidationError{"data_agendamento", "must be a valid ISO8601 date"})
	}

	return errors
}

func ValidateLoginInput(input LoginInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.UID) == "" {
		errors = append(errors, ValidationError{"uid", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func isValidDate(dateStr string) bool {

	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}

	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}

	if _, err := time.Parse(time.RFC3339Nano, dateStr); err == nil {
		return true
	}
	return false
}
