package customers

import "github.com/sangkips/customer-service/internal/domains/customers/models"

// CustomerDto is the wire shape of a customer.
type CustomerDto struct {
	ID        int32  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func toDto(c models.Customer) CustomerDto {
	return CustomerDto{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

func toEntity(d CustomerDto) models.Customer {
	return models.Customer{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
}
