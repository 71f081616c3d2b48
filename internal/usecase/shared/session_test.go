//go:build unit

package shared_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cusco-tours/internal/usecase/shared"
)

func TestSessions(t *testing.T) {
	t.Run("unknown profile yields a zero session", func(t *testing.T) {
		sessions := shared.NewSessions()

		session := sessions.Get(uuid.New())
		assert.Empty(t, session.CouponCode)
		assert.Empty(t, session.ServiceIDs)
	})

	t.Run("set coupon replaces the previous one", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		sessions.SetCoupon(profileID, "BIENVENIDO10")
		sessions.SetCoupon(profileID, "VERANO25")

		assert.Equal(t, "VERANO25", sessions.Get(profileID).CouponCode)
	})

	t.Run("clear coupon keeps the service selection", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		sessions.SetCoupon(profileID, "BIENVENIDO10")
		sessions.ToggleService(profileID, 2, true)
		sessions.ClearCoupon(profileID)

		session := sessions.Get(profileID)
		assert.Empty(t, session.CouponCode)
		assert.Equal(t, []int64{2}, session.ServiceIDs)
	})

	t.Run("toggling a service twice is idempotent on the selection", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		sessions.ToggleService(profileID, 1, true)
		sessions.ToggleService(profileID, 1, true)

		assert.Equal(t, []int64{1}, sessions.Get(profileID).ServiceIDs)
	})

	t.Run("deselect removes only the given service", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		sessions.ToggleService(profileID, 1, true)
		sessions.ToggleService(profileID, 2, true)
		sessions.ToggleService(profileID, 1, false)

		assert.Equal(t, []int64{2}, sessions.Get(profileID).ServiceIDs)
	})

	t.Run("reset drops coupon and services", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		sessions.SetCoupon(profileID, "SANTIAGO50")
		sessions.ToggleService(profileID, 3, true)
		sessions.Reset(profileID)

		session := sessions.Get(profileID)
		assert.Empty(t, session.CouponCode)
		assert.Empty(t, session.ServiceIDs)
	})

	t.Run("get returns a copy, not shared state", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		sessions.ToggleService(profileID, 1, true)
		session := sessions.Get(profileID)
		session.ServiceIDs[0] = 99

		assert.Equal(t, []int64{1}, sessions.Get(profileID).ServiceIDs)
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		sessions := shared.NewSessions()
		a, b := uuid.New(), uuid.New()

		sessions.SetCoupon(a, "BIENVENIDO10")

		assert.Empty(t, sessions.Get(b).CouponCode)
	})

	t.Run("concurrent toggles do not race", func(t *testing.T) {
		sessions := shared.NewSessions()
		profileID := uuid.New()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				sessions.ToggleService(profileID, int64(n%3+1), n%2 == 0)
				sessions.Get(profileID)
			}(i)
		}
		wg.Wait()
	})
}
