package application

import (
	"context"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/csvexport"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
)

var analyticsColumns = []csvexport.Column[entity.CategorySales]{
	{Header: "Category", Value: func(c entity.CategorySales) string { return c.Category }},
	{Header: "Sales", Value: func(c entity.CategorySales) string { return csvexport.Number(c.Sales) }},
	{Header: "Percentage", Value: func(c entity.CategorySales) string { return csvexport.Number(c.Percentage) }},
}

type AnalyticsService struct {
	Deps
}

func NewAnalyticsService(deps Deps) *AnalyticsService {
	return &AnalyticsService{Deps: deps}
}

// Report returns the analytics for [start, end]. Empty bounds take the default range.
func (s *AnalyticsService) Report(start, end string) (entity.AnalyticsReport, error) {
	if start == "" {
		start = mockdata.AnalyticsStart
	}
	if end == "" {
		end = mockdata.AnalyticsEnd
	}
	if _, err := listing.ParseDateRange(start, end); err != nil {
		return entity.AnalyticsReport{}, ErrInvalidDateRange
	}
	r := mockdata.Analytics()
	r.DateRange = entity.DateRange{Start: start, End: end}
	return r, nil
}

// Export renders sales by category for the range.
func (s *AnalyticsService) Export(ctx context.Context, start, end string) (Export, error) {
	r, err := s.Report(start, end)
	if err != nil {
		return Export{}, err
	}
	return export(ctx, s.Deps, csvexport.AnalyticsFile, analyticsColumns, r.SalesByCategory)
}
