// internal/service/customer/locator.go
package customer

import (
	"strconv"

	"mockcrm-service/internal/domain/customer"
)

// locate returns the position of the first record whose id, formatted as
// text, equals the given text id. It returns -1 for an empty id or when no
// record matches. First match wins, so a store that somehow acquired
// duplicate ids still resolves deterministically.
func locate(records []customer.Customer, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range records {
		if strconv.FormatInt(r.ID, 10) == id {
			return i
		}
	}
	return -1
}
