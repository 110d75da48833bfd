//go:build unit

package validation_test

import (
	"testing"
	"time"

	"rental-admin/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Date     string `binding:"omitempty,isodate"`
	Discount string `binding:"omitempty,discounttype"`
	Method   string `binding:"omitempty,paymentmethod"`
	Role     string `binding:"omitempty,role"`
	Status   string `binding:"omitempty,bookingstatus"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, validation.Register())
	require.NoError(t, validation.Register())

	tests := []struct {
		name  string
		input probe
		ok    bool
	}{
		{"empty passes", probe{}, true},
		{"valid values", probe{Date: "2025-06-05", Discount: "percentage", Method: "UPI", Role: "operator", Status: "CONFIRMED"}, true},
		{"bad date", probe{Date: "05/06/2025"}, false},
		{"impossible date", probe{Date: "2025-02-30"}, false},
		{"bad discount type", probe{Discount: "BOGO"}, false},
		{"bad payment method", probe{Method: "CHEQUE"}, false},
		{"bad role", probe{Role: "root"}, false},
		{"bad status", probe{Status: "PENDING"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := validation.ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = validation.ParseOptionalDate("2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), *got)

	_, err = validation.ParseOptionalDate("tomorrow")
	assert.Error(t, err)
}
