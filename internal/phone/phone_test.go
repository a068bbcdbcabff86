package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sms-relay/internal/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plus prefix unchanged", "+14155552671", "+14155552671"},
		{"plus prefix with spaces", "+1 415 555 2671", "+14155552671"},
		{"leading zero replaced", "087 123 4567", "+353871234567"},
		{"no prefix prepended", "871234567", "+353871234567"},
		{"single leading zero removed only", "00871234567", "+3530871234567"},
		{"tabs and newlines stripped", "08\t712\n34 567", "+353871234567"},
		// Documented quirk: a bare country code is not detected, so the
		// default code is prepended on top of it.
		{"country code without plus is doubled", "353871234567", "+353353871234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Normalize(tt.in, "+353"))
		})
	}
}

func TestNormalizeOtherCountryCode(t *testing.T) {
	assert.Equal(t, "+447700900123", phone.Normalize("07700 900123", "+44"))
}
