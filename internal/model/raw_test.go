package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaw(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{name: "value", input: "CUST-0001", wantValid: true},
		{name: "whitespace is a value", input: "  ", wantValid: true},
		{name: "empty is absent", input: "", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Raw(tt.input)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.input, got.String)
			}
		})
	}
}

func TestRawStringOr(t *testing.T) {
	assert.Equal(t, "value", Raw("value").Or("fallback"))
	assert.Equal(t, "fallback", Raw("").Or("fallback"))
	assert.Equal(t, UnknownName, RawString{}.Or(UnknownName))
}
