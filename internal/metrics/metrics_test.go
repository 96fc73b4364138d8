package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/recipes", "200"))
	RecordHTTPRequest("GET", "/api/recipes", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/recipes", "200"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}

	before = testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	RecordHTTPRequest("GET", "", 404, time.Millisecond)
	after = testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	if after-before != 1 {
		t.Errorf("expected unmatched route to be counted, grew by %v", after-before)
	}
}

func TestDomainCounters(t *testing.T) {
	tests := []struct {
		name   string
		record func()
		value  func() float64
	}{
		{
			name:   "recipe mutation",
			record: func() { RecordRecipeMutation("create") },
			value:  func() float64 { return testutil.ToFloat64(RecipeMutations.WithLabelValues("create")) },
		},
		{
			name:   "toggle",
			record: func() { RecordToggle("favorite", "add", "created") },
			value: func() float64 {
				return testutil.ToFloat64(ToggleActions.WithLabelValues("favorite", "add", "created"))
			},
		},
		{
			name:   "shopping list",
			record: func() { RecordShoppingListDownload("txt") },
			value:  func() float64 { return testutil.ToFloat64(ShoppingListDownloads.WithLabelValues("txt")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.value()
			tt.record()
			if got := tt.value() - before; got != 1 {
				t.Errorf("expected increment of 1, got %v", got)
			}
		})
	}
}
