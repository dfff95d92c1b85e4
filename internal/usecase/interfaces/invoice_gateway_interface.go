package interfaces

import (
	"context"

	"disena_service/internal/domain/entities"
)

// IInvoiceGateway abstracts the outbound invoicing collaborator: it
// accepts a quote's line items plus a contact email and returns the
// provider's reference id. The collaborator owns persistence and any
// follow-up scheduling; this service only hands the quote over.
type IInvoiceGateway interface {
	SendInvoice(ctx context.Context, q entities.Quote, contactEmail string) (reference string, err error)
}
