package create_exclusion

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/exclusions"
)

// CreateExclusionRequest HTTP request model. Пустой period/classSlot
// означает wildcard - правило блокирует все значения поля.
type CreateExclusionRequest struct {
	ItemID    int64   `json:"itemId"`
	Weekday   int     `json:"weekday"` // 0=segunda .. 4=sexta
	Period    *string `json:"period,omitempty"`
	ClassSlot *string `json:"classSlot,omitempty"`
}

// ExclusionResponse HTTP response model
type ExclusionResponse struct {
	ID        int64   `json:"id"`
	ItemID    int64   `json:"itemId"`
	Weekday   int     `json:"weekday"`
	Period    *string `json:"period,omitempty"`
	ClassSlot *string `json:"classSlot,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateExclusionRequest) ToServiceRequest() (*exclusions.CreateRequest, error) {
	req := &exclusions.CreateRequest{
		ItemID:  r.ItemID,
		Weekday: r.Weekday,
	}

	if r.Period != nil {
		period, err := domain.ParsePeriod(*r.Period)
		if err != nil {
			return nil, err
		}
		req.Period = &period
	}

	if r.ClassSlot != nil {
		classSlot, err := domain.ParseClassSlot(*r.ClassSlot)
		if err != nil {
			return nil, err
		}
		req.ClassSlot = &classSlot
	}

	return req, nil
}

// FromDomainRule конвертирует domain-модель правила в HTTP response
func FromDomainRule(rule *domain.ExclusionRule) *ExclusionResponse {
	resp := &ExclusionResponse{
		ID:        rule.ID,
		ItemID:    rule.ItemID,
		Weekday:   rule.Weekday,
		CreatedAt: rule.CreatedAt.Format(time.RFC3339),
	}
	if rule.Period != nil {
		period := string(*rule.Period)
		resp.Period = &period
	}
	if rule.ClassSlot != nil {
		classSlot := string(*rule.ClassSlot)
		resp.ClassSlot = &classSlot
	}
	return resp
}
