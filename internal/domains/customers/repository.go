package customers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"
	"github.com/sangkips/customer-service/internal/domains/customers/models"
)

// Repository is the only component that touches the customers table.
// Lookups report absence through the bool result; a missing row is never
// an error. Store failures are logged here and returned unchanged.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id int32) (models.Customer, bool, error)
	Insert(ctx context.Context, customer models.Customer) (models.Customer, error)
	Modify(ctx context.Context, customer models.Customer) (models.Customer, bool, error)
	Delete(ctx context.Context, id int32) (bool, error)
}

type repository struct {
	q      *models.Queries
	logger zerolog.Logger
}

func NewRepository(db models.DBTX, logger zerolog.Logger) Repository {
	return &repository{
		q:      models.New(db),
		logger: logger.With().Str("component", "customers.repository").Logger(),
	}
}

func (r *repository) GetAll(ctx context.Context) ([]models.Customer, error) {
	customers, err := r.q.ListCustomers(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list customers")
		return nil, err
	}
	return customers, nil
}

func (r *repository) GetByID(ctx context.Context, id int32) (models.Customer, bool, error) {
	customer, err := r.q.GetCustomer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, false, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Int32("customer_id", id).Msg("failed to get customer")
		return models.Customer{}, false, err
	}
	return customer, true, nil
}

func (r *repository) Insert(ctx context.Context, customer models.Customer) (models.Customer, error) {
	created, err := r.q.CreateCustomer(ctx, models.CreateCustomerParams{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert customer")
		return models.Customer{}, err
	}
	return created, nil
}

// Modify reads then writes in two statements without a lock or version
// check, so concurrent edits of the same id are last-write-wins.
func (r *repository) Modify(ctx context.Context, customer models.Customer) (models.Customer, bool, error) {
	if _, err := r.q.GetCustomer(ctx, customer.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, false, nil
		}
		r.logger.Error().Err(err).Int32("customer_id", customer.ID).Msg("failed to load customer for update")
		return models.Customer{}, false, err
	}

	updated, err := r.q.UpdateCustomerNames(ctx, models.UpdateCustomerNamesParams{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	})
	if errors.Is(err, sql.ErrNoRows) {
		// deleted between the read and the write
		return models.Customer{}, false, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Int32("customer_id", customer.ID).Msg("failed to update customer")
		return models.Customer{}, false, err
	}
	return updated, true, nil
}

func (r *repository) Delete(ctx context.Context, id int32) (bool, error) {
	affected, err := r.q.DeleteCustomer(ctx, id)
	if err != nil {
		r.logger.Error().Err(err).Int32("customer_id", id).Msg("failed to delete customer")
		return false, err
	}
	return affected > 0, nil
}
