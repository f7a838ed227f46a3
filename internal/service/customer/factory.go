// internal/service/customer/factory.go
package customer

import (
	"strconv"
	"time"

	"mockcrm-service/internal/domain/customer"
	"mockcrm-service/internal/repository/memory"
)

// DefaultStrategy selects how the factory decides that a payload field is
// absent and should take its placeholder value.
type DefaultStrategy string

const (
	// StrategyFalsy treats omitted fields and zero values ("", false) the
	// same: both take the default. This reproduces the historical behavior
	// of the service, including active:false being rewritten to true.
	StrategyFalsy DefaultStrategy = "falsy"
	// StrategyPresence only applies defaults to fields that were omitted
	// from (or null in) the payload.
	StrategyPresence DefaultStrategy = "presence"
)

// ParseStrategy maps a config value onto a strategy, falling back to the
// legacy falsy behavior for anything unrecognized.
func ParseStrategy(v string) DefaultStrategy {
	if DefaultStrategy(v) == StrategyPresence {
		return StrategyPresence
	}
	return StrategyFalsy
}

// Factory materializes complete customer records from partial untrusted
// payloads. It never fails: every field ends up populated, via the payload
// or via defaults.
type Factory struct {
	store    *memory.CustomerStore
	strategy DefaultStrategy
	now      func() time.Time
}

func NewFactory(store *memory.CustomerStore, strategy DefaultStrategy) *Factory {
	return &Factory{store: store, strategy: strategy, now: time.Now}
}

// Generate builds a well-formed record from p. With preserveID it keeps the
// payload id, falling back to fallbackID when the payload has none; whether
// that id actually exists is the locator's concern, checked by the caller.
// Without preserveID it assigns max(existing ids)+1, so the first record in
// an empty store gets id 1. A nil payload yields an all-defaults record.
func (f *Factory) Generate(p *customer.Payload, fallbackID string, preserveID bool) customer.Customer {
	if p == nil {
		p = &customer.Payload{}
	}

	c := customer.Customer{
		Name:       f.text(p.Name, customer.DefaultName),
		Address:    f.text(p.Address, customer.DefaultAddress),
		Phone:      f.text(p.Phone, customer.DefaultPhone),
		Email:      f.text(p.Email, customer.DefaultEmail),
		Country:    f.text(p.Country, customer.DefaultCountry),
		Contact:    f.text(p.Contact, customer.DefaultContact),
		Active:     f.active(p.Active),
		LastUpdate: f.text(p.LastUpdate, f.Timestamp()),
	}

	if preserveID {
		id := string(p.ID)
		if id == "" {
			id = fallbackID
		}
		// A malformed id parses to 0; it can never match a stored record.
		c.ID, _ = strconv.ParseInt(id, 10, 64)
	} else {
		c.ID = f.store.MaxID() + 1
	}
	return c
}

// Timestamp returns the current time in the ISO-8601 form stored on records.
func (f *Factory) Timestamp() string {
	return f.now().UTC().Format(time.RFC3339)
}

func (f *Factory) text(v *string, def string) string {
	if v == nil || (f.strategy == StrategyFalsy && *v == "") {
		return def
	}
	return *v
}

// active defaults to true. Under the falsy strategy a sent false is
// indistinguishable from an omitted field, so the result is always true.
func (f *Factory) active(v *bool) bool {
	if v == nil || f.strategy == StrategyFalsy {
		return true
	}
	return *v
}
