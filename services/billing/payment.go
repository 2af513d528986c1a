package billing

import (
	"fmt"
	"math"

	"akplaw/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreatePaymentIntent opens a Stripe payment intent for an invoice and
// returns the client secret for the portal's payment element. Revoked
// invoices cannot be paid. An existing intent is reused so repeated clicks
// do not stack charges.
func (s *DefaultBillingService) CreatePaymentIntent(docID, clientID string) (string, error) {
	doc, err := s.invoiceFor(docID, clientID)
	if err != nil {
		return "", err
	}
	inv := doc.Invoice
	if inv.IsRevoked {
		return "", ErrRevoked
	}
	if inv.TotalAmount <= 0 {
		return "", fmt.Errorf("invoice %s has no payable amount", inv.Number)
	}

	if inv.PaymentIntentID != "" {
		existing, err := paymentintent.Get(inv.PaymentIntentID, nil)
		if err == nil && existing.Status != stripe.PaymentIntentStatusCanceled {
			return existing.ClientSecret, nil
		}
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(inv.TotalAmount * 100))),
		Currency: stripe.String(inv.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("invoice_number", inv.Number)
	params.AddMetadata("client_id", doc.ClientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentIntentID = pi.ID
	if err := s.Repo.Update(doc); err != nil {
		utils.GetLogger().Error("failed to record payment intent on invoice",
			zap.String("invoice", inv.Number), zap.String("intent", pi.ID), zap.Error(err))
	}
	return pi.ClientSecret, nil
}
