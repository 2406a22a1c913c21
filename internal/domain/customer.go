package domain

import "strings"

// WalkInCustomerType is the customer_type_id assigned to self-registered
// customers, matching the legacy data.
const WalkInCustomerType int64 = 1

type Customer struct {
	ID             int64  `json:"customer_id"`
	Name           string `json:"customer_name"`
	Phone          string `json:"customer_phone"`
	Email          string `json:"customer_email,omitempty"`
	CustomerTypeID int64  `json:"customer_type_id"`
}

// NormalizePhone strips everything but digits. Customers are deduplicated
// on the normalized form.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
