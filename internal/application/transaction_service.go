package application

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	repo "github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/csvexport"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
)

var transactionColumns = []csvexport.Column[entity.Transaction]{
	{Header: "ID", Value: func(t entity.Transaction) string { return t.ID }},
	{Header: "Buyer", Value: func(t entity.Transaction) string { return t.Buyer }},
	{Header: "Seller", Value: func(t entity.Transaction) string { return t.Seller }},
	{Header: "Item", Value: func(t entity.Transaction) string { return t.Item }},
	{Header: "Amount", Value: func(t entity.Transaction) string { return csvexport.Number(t.Amount) }},
	{Header: "Date", Value: func(t entity.Transaction) string { return t.Date }},
	{Header: "Status", Value: func(t entity.Transaction) string { return string(t.Status) }},
}

// TransactionFilter narrows the transactions view. Empty fields match everything.
type TransactionFilter struct {
	Query  string
	Status entity.TransactionStatus
	From   string
	To     string
}

type TransactionService struct {
	Repo     repo.TransactionRepository
	Settings *SettingsService
	Deps
}

func NewTransactionService(r repo.TransactionRepository, settings *SettingsService, deps Deps) *TransactionService {
	return &TransactionService{Repo: r, Settings: settings, Deps: deps}
}

func (s *TransactionService) Load(ctx context.Context) LoadResult {
	return loadView[entity.Transaction](ctx, s.Deps, "transactions", "/transactions", mockdata.Transactions(), s.Repo)
}

func (s *TransactionService) Filtered(f TransactionFilter) ([]entity.Transaction, error) {
	rng, err := listing.ParseDateRange(f.From, f.To)
	if err != nil {
		if errors.Is(err, listing.ErrInvalidRange) {
			return nil, ErrInvalidDateRange
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	switch f.Status {
	case "", entity.TransactionCompleted, entity.TransactionPending, entity.TransactionDisputed:
	default:
		return nil, ErrInvalidStatus
	}

	items := listing.Filter(s.Repo.All(), f.Query,
		func(t entity.Transaction) string { return t.Buyer },
		func(t entity.Transaction) string { return t.Seller },
		func(t entity.Transaction) string { return t.Item },
	)
	if f.Status != "" {
		items = listing.Where(items, func(t entity.Transaction) bool { return t.Status == f.Status })
	}
	return listing.InRange(items, rng, func(t entity.Transaction) string { return t.Date }), nil
}

func (s *TransactionService) List(f TransactionFilter, page, size int) (listing.Page[entity.Transaction], error) {
	items, err := s.Filtered(f)
	if err != nil {
		return listing.Page[entity.Transaction]{}, err
	}
	return listing.Paginate(items, page, size), nil
}

func (s *TransactionService) Get(id string) (entity.Transaction, error) {
	t, err := s.Repo.GetByID(id)
	return t, notFound(err, ErrTransactionNotFound)
}

// Resolve closes a dispute as completed and keeps the admin's note.
func (s *TransactionService) Resolve(ctx context.Context, id, note string) (entity.Transaction, error) {
	t, err := s.Repo.Update(id, func(t *entity.Transaction) error {
		if t.Status != entity.TransactionDisputed {
			return ErrNotDisputed
		}
		t.Status = entity.TransactionCompleted
		t.ResolutionNote = note
		return nil
	})
	if err != nil {
		return entity.Transaction{}, notFound(err, ErrTransactionNotFound)
	}
	record(ctx, s.Deps, "resolve", "transaction", id, note)
	return t, nil
}

func (s *TransactionService) feePercent() float64 {
	if s.Settings == nil {
		return 2.5
	}
	return s.Settings.Platform().PlatformFee
}

// Summary totals completed revenue and the platform fee on it.
func (s *TransactionService) Summary() entity.TransactionSummary {
	var sum entity.TransactionSummary
	for _, t := range s.Repo.All() {
		switch t.Status {
		case entity.TransactionCompleted:
			sum.Completed++
			sum.TotalRevenue += t.Amount
		case entity.TransactionPending:
			sum.Pending++
		case entity.TransactionDisputed:
			sum.Disputed++
		}
	}
	sum.PlatformFeePercent = s.feePercent()
	sum.TotalFees = math.Round(sum.TotalRevenue*sum.PlatformFeePercent) / 100
	sum.TotalRevenueFormatted = helpers.FormatCurrency(sum.TotalRevenue, helpers.Naira)
	sum.TotalFeesFormatted = helpers.Naira + fmt.Sprintf("%.2f", sum.TotalFees)
	return sum
}

// Export renders the filtered view.
func (s *TransactionService) Export(ctx context.Context, f TransactionFilter) (Export, error) {
	items, err := s.Filtered(f)
	if err != nil {
		return Export{}, err
	}
	return export(ctx, s.Deps, csvexport.TransactionsFile, transactionColumns, items)
}
