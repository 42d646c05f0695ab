package domain

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Validation messages shown next to form fields.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgInvalidAmount  = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// ParsedForm is the typed, normalized result of a valid invoice form.
type ParsedForm struct {
	CustomerID  snowflake.ID
	AmountCents int64
	Status      InvoiceStatus
}

// ParseForm batch-validates raw form values. All field errors are collected
// and returned together, keyed by field name; the parsed form is only valid
// when the error map is empty.
func ParseForm(values FormValues) (ParsedForm, map[string][]string) {
	var parsed ParsedForm
	fieldErrors := make(map[string][]string)

	customerID := strings.TrimSpace(values.CustomerID)
	if customerID == "" {
		fieldErrors["customer_id"] = append(fieldErrors["customer_id"], MsgSelectCustomer)
	} else {
		id, err := snowflake.ParseString(customerID)
		if err != nil {
			fieldErrors["customer_id"] = append(fieldErrors["customer_id"], MsgSelectCustomer)
		} else {
			parsed.CustomerID = id
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(values.Amount))
	if err != nil || !amount.IsPositive() {
		fieldErrors["amount"] = append(fieldErrors["amount"], MsgInvalidAmount)
	} else {
		parsed.AmountCents = amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	switch InvoiceStatus(strings.TrimSpace(values.Status)) {
	case StatusPending:
		parsed.Status = StatusPending
	case StatusPaid:
		parsed.Status = StatusPaid
	default:
		fieldErrors["status"] = append(fieldErrors["status"], MsgSelectStatus)
	}

	if len(fieldErrors) > 0 {
		return ParsedForm{}, fieldErrors
	}
	return parsed, nil
}
