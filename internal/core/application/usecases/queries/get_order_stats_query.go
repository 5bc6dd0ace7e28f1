package queries

import (
	"errors"
	"time"

	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

const (
	topItemsLimit     = 5
	recentOrdersLimit = 5
)

// GetOrderStatsQuery computes the admin dashboard figures as of a moment.
// Months are calendar months in the location of now.
//
// Example:
//
//	query, _ := NewGetOrderStatsQuery(time.Now())
//	stats, err := handler.Handle(ctx, query)
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery(now time.Time) (GetOrderStatsQuery, error) {
	if now.IsZero() {
		return GetOrderStatsQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetOrderStatsQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) Now() time.Time { return q.now }

// monthBounds returns the first instants of the previous, current and next month.
func (q GetOrderStatsQuery) monthBounds() (previous, current, next time.Time) {
	y, m, _ := q.now.Date()
	current = time.Date(y, m, 1, 0, 0, 0, 0, q.now.Location())
	return current.AddDate(0, -1, 0), current, current.AddDate(0, 1, 0)
}

// GetOrderStatsQueryResponse summarises every stored order.
// Revenue figures leave cancelled orders out; counts include them.
type GetOrderStatsQueryResponse struct {
	TotalOrders         int64
	TotalRevenue        int64
	OrdersByStatus      map[string]int64
	CurrentMonthRevenue int64
	LastMonthRevenue    int64
	// RevenueChangePercent compares the current month with the previous one.
	// It is 100 when the previous month had no revenue and the current one has.
	RevenueChangePercent float64
	PopularPlan          *PlanPopularity
	TotalFigures         int64
	TopItems             []ItemUsage
	RecentOrders         []RecentOrder
}

type PlanPopularity struct {
	Name   string
	Orders int64
}

// ItemUsage counts how many figure slots use a catalog item, accessories included.
type ItemUsage struct {
	ItemID int64
	Count  int64
}

type RecentOrder struct {
	ID           int64
	CustomerName string
	PlanName     string
	TotalPrice   int64
	Status       string
	CreatedAt    time.Time
}

func revenueChange(current, previous int64) float64 {
	switch {
	case previous > 0:
		return float64(current-previous) / float64(previous) * 100
	case current > 0:
		return 100
	default:
		return 0
	}
}
