package session

import (
	"sync"
	"testing"

	"hostel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	_, ok := store.Current()
	assert.False(t, ok)

	store.Set(models.User{ID: 1, Username: "warden1", Role: models.RoleWarden})
	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "warden1", current.Username)
	assert.Equal(t, models.RoleWarden, current.Role)

	store.Clear()
	_, ok = store.Current()
	assert.False(t, ok)
}

func TestStoreReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Set(models.User{ID: 1, Username: "warden1"})

	current, _ := store.Current()
	current.Username = "mutated"

	unchanged, _ := store.Current()
	assert.Equal(t, "warden1", unchanged.Username)
}

func TestStoreSetOverwrites(t *testing.T) {
	store := NewStore()
	store.Set(models.User{ID: 1, Username: "warden1", Role: models.RoleWarden})
	store.Set(models.User{ID: 2, Username: "staff1", Role: models.RoleInventoryStaff})

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, 2, current.ID)
	assert.Equal(t, models.RoleInventoryStaff, current.Role)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			store.Set(models.User{ID: id, Username: "user"})
		}(i)
		go func() {
			defer wg.Done()
			store.Current()
		}()
	}
	wg.Wait()

	_, ok := store.Current()
	assert.True(t, ok)
}
