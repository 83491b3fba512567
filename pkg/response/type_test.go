package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"desapega-api/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	// Marshals in local time, so only the shape is asserted.
	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(`"`+response.DateTimeFormat+`"`) {
		t.Errorf("expected %q layout, got %s", response.DateTimeFormat, str)
	}
}
