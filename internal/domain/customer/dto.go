// internal/domain/customer/dto.go
package customer

import "encoding/json"

// FlexID carries a record identifier in text form. Clients send ids both as
// JSON numbers and as strings; both decode to the same textual value so that
// lookups compare text against text.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// Payload is the untrusted create/update request body. Pointer fields
// distinguish "omitted" from "sent a zero value" so the defaulting strategy
// can tell the two apart.
type Payload struct {
	ID         FlexID  `json:"id"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Country    *string `json:"country"`
	Contact    *string `json:"contact"`
	Active     *bool   `json:"active"`
	LastUpdate *string `json:"lastupdate"`
}

// ListFilters are the query parameters accepted by the list endpoint. Both
// arrive as text; qty is parsed at slice time.
type ListFilters struct {
	ID  string `form:"id"`
	Qty string `form:"qty"`
}
