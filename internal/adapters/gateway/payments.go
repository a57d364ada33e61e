package gateway

import (
	"context"
	"net/http"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

func (c *Client) GetPayments(ctx context.Context, tok *domain.TokenPair) ([]domain.Payment, error) {
	var raws []domain.RawPayment
	if err := c.do(ctx, "payments", http.MethodGet, "/payments/", tok, nil, &raws); err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(raws))
	for _, raw := range raws {
		payments = append(payments, domain.MapPayment(raw))
	}
	return payments, nil
}

type createPaymentRequest struct {
	Tenant     string           `json:"tenant"`
	Amount     float64          `json:"amount"`
	Date       string           `json:"date"`
	Status     string           `json:"status"`
	Type       string           `json:"type"`
	Method     string           `json:"method"`
	Reference  string           `json:"reference,omitempty"`
	ProofFiles []domain.FileRef `json:"proof_of_payment_files,omitempty"`
}

// CreatePayment records a tenant payment claim. The created row is always
// Pending; verification happens on the manager side.
func (c *Client) CreatePayment(ctx context.Context, tok *domain.TokenPair, p domain.NewPayment) (*domain.Payment, error) {
	req := createPaymentRequest{
		Tenant:     p.TenantID,
		Amount:     p.Amount,
		Date:       p.Date,
		Status:     string(domain.PaymentPending),
		Type:       p.Type,
		Method:     p.Method,
		Reference:  p.Reference,
		ProofFiles: p.ProofFiles,
	}
	var raw domain.RawPayment
	if err := c.do(ctx, "payments", http.MethodPost, "/payments/", tok, req, &raw); err != nil {
		return nil, err
	}
	payment := domain.MapPayment(raw)
	return &payment, nil
}
