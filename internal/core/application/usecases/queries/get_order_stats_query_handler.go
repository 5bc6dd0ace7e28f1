package queries

import (
	"context"
	"database/sql"

	"configurator/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates orders in the database.
// All reads run in one read-only repeatable-read transaction so the figures agree.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var resp GetOrderStatsQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return h.collect(tx, query, &resp)
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp.RevenueChangePercent = revenueChange(resp.CurrentMonthRevenue, resp.LastMonthRevenue)
	if resp.TopItems == nil {
		resp.TopItems = []ItemUsage{}
	}
	if resp.RecentOrders == nil {
		resp.RecentOrders = []RecentOrder{}
	}
	return resp, nil
}

func (h GetOrderStatsQueryHandler) collect(tx *gorm.DB, query GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	steps := []func(*gorm.DB, GetOrderStatsQuery, *GetOrderStatsQueryResponse) error{
		h.revenue,
		h.statusCounts,
		h.popularPlan,
		h.figureCount,
		h.topItems,
		h.recentOrders,
	}
	for _, step := range steps {
		if err := step(tx, query, resp); err != nil {
			return err
		}
	}
	return nil
}

func (GetOrderStatsQueryHandler) revenue(tx *gorm.DB, query GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	previous, current, next := query.monthBounds()

	var row struct {
		TotalOrders         int64
		TotalRevenue        int64
		CurrentMonthRevenue int64
		LastMonthRevenue    int64
	}
	err := tx.Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(total_price) FILTER (WHERE status <> ?), 0) AS total_revenue,
			COALESCE(SUM(total_price) FILTER (
				WHERE status <> ? AND created_at >= ? AND created_at < ?
			), 0) AS current_month_revenue,
			COALESCE(SUM(total_price) FILTER (
				WHERE status <> ? AND created_at >= ? AND created_at < ?
			), 0) AS last_month_revenue
		FROM orders
	`,
		order.Cancelled.String(),
		order.Cancelled.String(), current, next,
		order.Cancelled.String(), previous, current,
	).Scan(&row).Error
	if err != nil {
		return err
	}

	resp.TotalOrders = row.TotalOrders
	resp.TotalRevenue = row.TotalRevenue
	resp.CurrentMonthRevenue = row.CurrentMonthRevenue
	resp.LastMonthRevenue = row.LastMonthRevenue
	return nil
}

func (GetOrderStatsQueryHandler) statusCounts(tx *gorm.DB, _ GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	resp.OrdersByStatus = make(map[string]int64, len(order.AllStatuses))
	for _, s := range order.AllStatuses {
		resp.OrdersByStatus[s.String()] = 0
	}

	rows, err := tx.Raw(`SELECT status, COUNT(*) FROM orders GROUP BY status`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}
		resp.OrdersByStatus[status] = count
	}
	return rows.Err()
}

func (GetOrderStatsQueryHandler) popularPlan(tx *gorm.DB, _ GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	var rows []PlanPopularity
	err := tx.Raw(`
		SELECT plan_name AS name, COUNT(*) AS orders
		FROM orders
		GROUP BY plan_name
		ORDER BY orders DESC, plan_name
		LIMIT 1
	`).Scan(&rows).Error
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		resp.PopularPlan = &rows[0]
	}
	return nil
}

func (GetOrderStatsQueryHandler) figureCount(tx *gorm.DB, _ GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	return tx.Raw(`SELECT COUNT(*) FROM order_figures`).Scan(&resp.TotalFigures).Error
}

func (GetOrderStatsQueryHandler) topItems(tx *gorm.DB, _ GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	resp.TopItems = make([]ItemUsage, 0, topItemsLimit)
	return tx.Raw(`
		SELECT item_id, COUNT(*) AS count
		FROM (
			SELECT hair_id AS item_id FROM order_figures
			UNION ALL SELECT face_id FROM order_figures
			UNION ALL SELECT body_id FROM order_figures
			UNION ALL SELECT legs_id FROM order_figures
			UNION ALL SELECT unnest(accessories) FROM order_figures
		) AS items
		WHERE item_id > 0
		GROUP BY item_id
		ORDER BY count DESC, item_id
		LIMIT ?
	`, topItemsLimit).Scan(&resp.TopItems).Error
}

func (GetOrderStatsQueryHandler) recentOrders(tx *gorm.DB, _ GetOrderStatsQuery, resp *GetOrderStatsQueryResponse) error {
	resp.RecentOrders = make([]RecentOrder, 0, recentOrdersLimit)
	return tx.Raw(`
		SELECT id, customer_name, plan_name, total_price, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, recentOrdersLimit).Scan(&resp.RecentOrders).Error
}
