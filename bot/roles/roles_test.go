package roles

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSeedAndMembership(t *testing.T) {
	s := NewStore([]int64{10, 20})
	assert.True(t, s.IsAdmin(10))
	assert.True(t, s.IsAdmin(20))
	assert.False(t, s.IsAdmin(30))
}

func TestStoreGrantRevoke(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.IsAdmin(5))

	s.Grant(5)
	assert.True(t, s.IsAdmin(5))

	s.Revoke(5)
	assert.False(t, s.IsAdmin(5))

	// Revoking an unknown id is a no-op.
	s.Revoke(99)
	assert.Empty(t, s.List())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore([]int64{1})

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			s.Grant(id)
		}(i)
		go func(id int64) {
			defer wg.Done()
			_ = s.IsAdmin(id)
		}(i)
	}
	wg.Wait()

	assert.True(t, s.IsAdmin(1))
	assert.Len(t, s.List(), 50)
}
