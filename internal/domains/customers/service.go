package customers

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sangkips/customer-service/internal/queue"
)

// EventPublisher receives a change event after every successful write.
type EventPublisher interface {
	PublishCustomerEvent(ctx context.Context, event queue.CustomerEvent) error
}

type Service struct {
	repo   Repository
	events EventPublisher
	logger zerolog.Logger
}

func NewService(repo Repository, events EventPublisher, logger zerolog.Logger) *Service {
	if events == nil {
		events = queue.NopPublisher{}
	}
	return &Service{
		repo:   repo,
		events: events,
		logger: logger.With().Str("component", "customers.service").Logger(),
	}
}

func (s *Service) GetAllCustomers(ctx context.Context) ([]CustomerDto, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", "GetAllCustomers").Msg("repository error")
		return nil, err
	}

	dtos := make([]CustomerDto, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, toDto(c))
	}
	return dtos, nil
}

func (s *Service) GetCustomerByID(ctx context.Context, id int32) (CustomerDto, bool, error) {
	customer, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", "GetCustomerByID").Int32("customer_id", id).Msg("repository error")
		return CustomerDto{}, false, err
	}
	if !found {
		return CustomerDto{}, false, nil
	}
	return toDto(customer), true, nil
}

func (s *Service) CreateCustomer(ctx context.Context, dto CustomerDto) (CustomerDto, error) {
	created, err := s.repo.Insert(ctx, toEntity(dto))
	if err != nil {
		s.logger.Debug().Err(err).Str("op", "CreateCustomer").Msg("repository error")
		return CustomerDto{}, err
	}

	result := toDto(created)
	s.publish(ctx, queue.EventCustomerCreated, result)
	return result, nil
}

func (s *Service) EditCustomer(ctx context.Context, dto CustomerDto) (CustomerDto, bool, error) {
	modified, found, err := s.repo.Modify(ctx, toEntity(dto))
	if err != nil {
		s.logger.Debug().Err(err).Str("op", "EditCustomer").Int32("customer_id", dto.ID).Msg("repository error")
		return CustomerDto{}, false, err
	}
	if !found {
		return CustomerDto{}, false, nil
	}

	result := toDto(modified)
	s.publish(ctx, queue.EventCustomerUpdated, result)
	return result, true, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id int32) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", "DeleteCustomer").Int32("customer_id", id).Msg("repository error")
		return false, err
	}

	if deleted {
		s.publish(ctx, queue.EventCustomerDeleted, CustomerDto{ID: id})
	}
	return deleted, nil
}

// publish never fails the caller; the write has already been committed.
func (s *Service) publish(ctx context.Context, eventType string, dto CustomerDto) {
	event := queue.NewCustomerEvent(eventType, dto.ID, dto.FirstName, dto.LastName)
	if err := s.events.PublishCustomerEvent(ctx, event); err != nil {
		s.logger.Warn().Err(err).
			Str("event_type", eventType).
			Int32("customer_id", dto.ID).
			Msg("failed to publish customer event")
	}
}
