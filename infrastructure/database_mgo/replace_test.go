package database_mgo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vouchers-system/errors"
)

func TestReplacedErr(t *testing.T) {
	tests := []struct {
		name         string
		matchedCount int64
		wantError    error
	}{
		{name: "test-case-1 missing document reports not found", matchedCount: 0, wantError: errors.ErrVoucherNotFound},
		{name: "test-case-2 matched but identical replace is not an error", matchedCount: 1, wantError: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReplacedErr(tt.matchedCount, errors.ErrVoucherNotFound)
			assert.Equal(t, tt.wantError, err)
		})
	}
}
