package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueMaterialReturnsQueryHandler retrieves late material returns from the database.
// Results are sorted by deadline, most overdue first.
type GetOverdueMaterialReturnsQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueMaterialReturnsQueryHandler(db *gorm.DB) GetOverdueMaterialReturnsQueryHandler {
	return GetOverdueMaterialReturnsQueryHandler{db: db}
}

// Handle returns the orders waiting for material whose deadline is strictly
// before the query time and which are not flagged as returned.
func (h GetOverdueMaterialReturnsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueMaterialReturnsQuery,
) ([]GetOverdueMaterialReturnsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueMaterialReturnsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			customer_firstname,
			customer_lastname,
			customer_email,
			customer_phone,
			material_return_deadline
		FROM orders
		WHERE status = ?
			AND material_returned = FALSE
			AND material_return_deadline IS NOT NULL
			AND material_return_deadline < ?
		ORDER BY material_return_deadline, number
	`, order.WaitingMaterialReturn.String(), query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueMaterialReturnsQueryResponse
		var firstname, lastname string
		var deadline time.Time

		err = rows.Scan(
			&resp.Number,
			&firstname,
			&lastname,
			&resp.CustomerEmail,
			&resp.CustomerPhone,
			&deadline,
		)
		if err != nil {
			return nil, err
		}

		resp.CustomerName = firstname + " " + lastname
		resp.Deadline = deadline
		resp.OverdueBy = query.Now().Sub(deadline)
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
