package order

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusProcessing},
		{StatusProcessing, StatusShipped},
		{StatusShipped, StatusDelivered},
		{StatusDelivered, StatusReturned},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusProcessing, StatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusCancelled},
		{StatusPending, StatusShipped},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusReturned, StatusDelivered},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestAddressComplete(t *testing.T) {
	a := Address{Name: "Jo Doe", Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701", Country: "USA"}
	if !a.Complete() {
		t.Fatal("expected complete address")
	}
	a.Zip = ""
	if a.Complete() {
		t.Fatal("missing zip must fail completeness")
	}
}
