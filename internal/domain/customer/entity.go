// internal/domain/customer/entity.go
package customer

// Customer is the sole resource exposed by the mock API.
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Country    string `json:"country"`
	Contact    string `json:"contact"`
	Active     bool   `json:"active"`
	LastUpdate string `json:"lastupdate"`
}

// Placeholder values applied when a payload field is considered absent.
const (
	DefaultName    = "No Name"
	DefaultAddress = "No Address"
	DefaultPhone   = "No Phone"
	DefaultEmail   = "No Email"
	DefaultCountry = "No Country"
	DefaultContact = "No Contact"
)
