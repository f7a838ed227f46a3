// internal/repository/memory/seed.go
package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"mockcrm-service/internal/domain/customer"
)

// LoadSeed reads the static seed dataset: an array of customer objects. It is
// read once at process start and never written back; every restart re-seeds
// the store from the same file.
func LoadSeed(path string) ([]customer.Customer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var records []customer.Customer
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return records, nil
}
