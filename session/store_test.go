package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/model"
)

func TestOnChange_FiresImmediately(t *testing.T) {
	s := NewStore()

	var got []*model.User
	unsubscribe := s.OnChange(func(u *model.User) {
		got = append(got, u)
	})
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.Nil(t, got[0], "signed-out state delivered on subscribe")

	alice := model.User{UID: "u-a", Name: "Alice"}
	s.Set(alice)
	require.Len(t, got, 2)
	assert.Equal(t, "u-a", got[1].UID)

	s.Clear()
	require.Len(t, got, 3)
	assert.Nil(t, got[2])
}

func TestOnChange_FiresWithCurrentIdentity(t *testing.T) {
	s := NewStore()
	s.Set(model.User{UID: "u-a"})

	var got *model.User
	unsubscribe := s.OnChange(func(u *model.User) { got = u })
	defer unsubscribe()

	require.NotNil(t, got)
	assert.Equal(t, "u-a", got.UID)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := NewStore()

	calls := 0
	unsubscribe := s.OnChange(func(u *model.User) { calls++ })
	unsubscribe()

	s.Set(model.User{UID: "u-a"})
	assert.Equal(t, 1, calls, "only the immediate fire")
}

func TestCurrent(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok)

	s.Set(model.User{UID: "u-a"})
	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "u-a", u.UID)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}
