package returns

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusRequested, StatusApproved},
		{StatusRequested, StatusRejected},
		{StatusApproved, StatusReceived},
		{StatusReceived, StatusRefunded},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusRequested, StatusReceived},
		{StatusRequested, StatusRefunded},
		{StatusRejected, StatusApproved},
		{StatusRefunded, StatusRequested},
		{StatusApproved, StatusRefunded},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}
