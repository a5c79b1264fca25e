package views

import (
	"context"
	"sort"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DateRange is the inclusive analytics window as YYYY-MM-DD strings
type DateRange struct {
	Start string
	End   string
}

// DefaultRange is the trailing week ending today (UTC)
func DefaultRange(now time.Time) DateRange {
	now = now.UTC()
	return DateRange{
		Start: now.AddDate(0, 0, -7).Format(dateLayout),
		End:   now.Format(dateLayout),
	}
}

// ItemSeries is one bar group of the sales chart
type ItemSeries struct {
	MenuName string
	Quantity int64
	Revenue  decimal.Decimal
}

// AnalyticsOption configures an AnalyticsView
type AnalyticsOption func(*AnalyticsView)

// WithClock overrides time.Now, used to compute the default range
func WithClock(now func() time.Time) AnalyticsOption {
	return func(v *AnalyticsView) {
		v.now = now
	}
}

// AnalyticsView is the state of the sales analytics screen
type AnalyticsView struct {
	api SalesLister
	now func() time.Time

	Status Status
	Range  DateRange
	Rows   []models.SaleRow
	Err    string
}

// NewAnalyticsView creates a view over the trailing week
func NewAnalyticsView(api SalesLister, opts ...AnalyticsOption) *AnalyticsView {
	v := &AnalyticsView{api: api, now: time.Now, Status: StatusLoading}
	for _, opt := range opts {
		opt(v)
	}
	v.Range = DefaultRange(v.now())
	return v
}

// Load fetches the sales inside the current range
func (v *AnalyticsView) Load(ctx context.Context) error {
	v.Status = StatusLoading
	rows, err := v.api.ListSales(ctx, v.Range.Start, v.Range.End)
	if err != nil {
		log.WithError(err).Warn("Error fetching sales")
		v.Status = StatusFailed
		v.Err = errorText(err, "Failed to fetch sales")
		return err
	}
	v.Rows = rows
	v.Err = ""
	v.Status = StatusReady
	return nil
}

// SetRange changes the window and refetches. Empty values keep the current bound.
func (v *AnalyticsView) SetRange(ctx context.Context, start, end string) error {
	if start != "" {
		v.Range.Start = start
	}
	if end != "" {
		v.Range.End = end
	}
	return v.Load(ctx)
}

// Series aggregates quantity and revenue per menu name, ordered by name
func (v *AnalyticsView) Series() []ItemSeries {
	byName := map[string]*ItemSeries{}
	for _, row := range v.Rows {
		s, ok := byName[row.MenuName]
		if !ok {
			s = &ItemSeries{MenuName: row.MenuName, Revenue: decimal.Zero}
			byName[row.MenuName] = s
		}
		s.Quantity += int64(row.Quantity)
		s.Revenue = s.Revenue.Add(row.TotalPrice)
	}

	series := make([]ItemSeries, 0, len(byName))
	for _, s := range byName {
		series = append(series, *s)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].MenuName < series[j].MenuName
	})
	return series
}

// Totals returns the total quantity and revenue over the loaded rows
func (v *AnalyticsView) Totals() (int64, decimal.Decimal) {
	var quantity int64
	revenue := decimal.Zero
	for _, row := range v.Rows {
		quantity += int64(row.Quantity)
		revenue = revenue.Add(row.TotalPrice)
	}
	return quantity, revenue
}
