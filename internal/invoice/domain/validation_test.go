package domain

import "testing"

func TestParseFormValid(t *testing.T) {
	parsed, fieldErrors := ParseForm(FormValues{
		CustomerID: "1830996645130080256",
		Amount:     "49.99",
		Status:     "pending",
	})
	if fieldErrors != nil {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
	if parsed.CustomerID.String() != "1830996645130080256" {
		t.Fatalf("unexpected customer id: %s", parsed.CustomerID)
	}
	if parsed.AmountCents != 4999 {
		t.Fatalf("expected 4999 cents, got %d", parsed.AmountCents)
	}
	if parsed.Status != StatusPending {
		t.Fatalf("unexpected status: %s", parsed.Status)
	}
}

func TestParseFormCollectsAllErrors(t *testing.T) {
	parsed, fieldErrors := ParseForm(FormValues{})
	if len(fieldErrors) != 3 {
		t.Fatalf("expected 3 field errors, got %v", fieldErrors)
	}
	if got := fieldErrors["customer_id"]; len(got) != 1 || got[0] != MsgSelectCustomer {
		t.Fatalf("unexpected customer_id errors: %v", got)
	}
	if got := fieldErrors["amount"]; len(got) != 1 || got[0] != MsgInvalidAmount {
		t.Fatalf("unexpected amount errors: %v", got)
	}
	if got := fieldErrors["status"]; len(got) != 1 || got[0] != MsgSelectStatus {
		t.Fatalf("unexpected status errors: %v", got)
	}
	if parsed != (ParsedForm{}) {
		t.Fatalf("expected zero parsed form, got %+v", parsed)
	}
}

func TestParseFormRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-5", "0.00", "abc", ""} {
		_, fieldErrors := ParseForm(FormValues{
			CustomerID: "1830996645130080256",
			Amount:     amount,
			Status:     "paid",
		})
		if got := fieldErrors["amount"]; len(got) != 1 || got[0] != MsgInvalidAmount {
			t.Fatalf("amount %q: expected invalid amount error, got %v", amount, fieldErrors)
		}
	}
}

func TestParseFormRejectsUnknownStatus(t *testing.T) {
	_, fieldErrors := ParseForm(FormValues{
		CustomerID: "1830996645130080256",
		Amount:     "10",
		Status:     "overdue",
	})
	if got := fieldErrors["status"]; len(got) != 1 || got[0] != MsgSelectStatus {
		t.Fatalf("expected status error, got %v", fieldErrors)
	}
}

func TestParseFormRoundsFractionalCents(t *testing.T) {
	parsed, fieldErrors := ParseForm(FormValues{
		CustomerID: "1830996645130080256",
		Amount:     "10.005",
		Status:     "paid",
	})
	if fieldErrors != nil {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
	if parsed.AmountCents != 1001 {
		t.Fatalf("expected 1001 cents, got %d", parsed.AmountCents)
	}
}

func TestParseFormRejectsMalformedCustomerID(t *testing.T) {
	_, fieldErrors := ParseForm(FormValues{
		CustomerID: "not-a-number",
		Amount:     "10",
		Status:     "paid",
	})
	if got := fieldErrors["customer_id"]; len(got) != 1 || got[0] != MsgSelectCustomer {
		t.Fatalf("expected customer error, got %v", fieldErrors)
	}
}
