package gen_ids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObID_Next(t *testing.T) {
	ob := &ObID{Prefix: "VO", LatestId: 1, Date: 14, MaxLen: 9}

	assert.Equal(t, int64(1), ob.next(14))
	assert.Equal(t, int64(2), ob.next(14))
	assert.Equal(t, int64(3), ob.next(14))

	// first draw after midnight restarts the counter once
	assert.Equal(t, int64(1), ob.next(15))
	assert.Equal(t, 15, ob.Date)

	// later draws on the same day keep counting instead of restarting
	assert.Equal(t, int64(2), ob.next(15))
	assert.Equal(t, int64(3), ob.next(15))
}

func TestGetIdOrderId(t *testing.T) {
	InitGenIDservice()

	pattern := regexp.MustCompile(`^VO\d{8}-\d{9}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GetIdOrderId()

		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate order id %v", id)
		seen[id] = true
	}
}
