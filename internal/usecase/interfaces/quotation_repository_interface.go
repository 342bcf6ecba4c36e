package interfaces

import (
	"context"
	"errors"
	"quotation_service/internal/domain/entities"
)

// ErrDuplicateQuotationNumber is returned by Create when the quotation number is
// already taken. The store never overwrites an existing quotation.
var ErrDuplicateQuotationNumber = errors.New("quotation number already exists")

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// The quotation service must be able to:
//   - insert a quotation, rejecting duplicate numbers
//   - read one quotation by id, all quotations, or the ones a user created
//   - overwrite the status of an existing quotation

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListAll(ctx context.Context) ([]entities.Quotation, error)
	ListByCreator(ctx context.Context, userID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}

// IQuotationSequence hands out the sequential part of quotation numbers.
type IQuotationSequence interface {
	Next(ctx context.Context) (int64, error)
}
