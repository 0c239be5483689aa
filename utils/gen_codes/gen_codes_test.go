package gen_codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVoucherCode(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		code, err := NewVoucherCode()
		if err != nil {
			t.Fatalf("generate code err %v", err)
		}

		assert.Len(t, code, 8)
		assert.Regexp(t, "^[0-9A-F]{8}$", code)

		if seen[code] {
			t.Errorf("duplicate code %v after %v draws", code, i)
		}
		seen[code] = true
	}
}
