package models

import (
	"context"
)

const createCustomer = `-- name: CreateCustomer :one
INSERT INTO customers (first_name, last_name)
VALUES ($1, $2)
RETURNING id, first_name, last_name
`

type CreateCustomerParams struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	row := q.db.QueryRowContext(ctx, createCustomer, arg.FirstName, arg.LastName)
	var i Customer
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName)
	return i, err
}

const deleteCustomer = `-- name: DeleteCustomer :execrows
DELETE FROM customers
WHERE id = $1
`

func (q *Queries) DeleteCustomer(ctx context.Context, id int32) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCustomer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getCustomer = `-- name: GetCustomer :one
SELECT id, first_name, last_name
FROM customers
WHERE id = $1
`

func (q *Queries) GetCustomer(ctx context.Context, id int32) (Customer, error) {
	row := q.db.QueryRowContext(ctx, getCustomer, id)
	var i Customer
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName)
	return i, err
}

const listCustomers = `-- name: ListCustomers :many
SELECT id, first_name, last_name
FROM customers
ORDER BY id
`

func (q *Queries) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := q.db.QueryContext(ctx, listCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Customer{}
	for rows.Next() {
		var i Customer
		if err := rows.Scan(&i.ID, &i.FirstName, &i.LastName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCustomerNames = `-- name: UpdateCustomerNames :one
UPDATE customers
SET first_name = $2,
    last_name = $3
WHERE id = $1
RETURNING id, first_name, last_name
`

type UpdateCustomerNamesParams struct {
	ID        int32  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (q *Queries) UpdateCustomerNames(ctx context.Context, arg UpdateCustomerNamesParams) (Customer, error) {
	row := q.db.QueryRowContext(ctx, updateCustomerNames, arg.ID, arg.FirstName, arg.LastName)
	var i Customer
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName)
	return i, err
}
