package handlers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artem-streltsov/esmeralde-bot/commands"
	"github.com/artem-streltsov/esmeralde-bot/groups"
	"github.com/artem-streltsov/esmeralde-bot/handlers"
	"github.com/artem-streltsov/esmeralde-bot/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const week7Link = "https://edt.iut-orsay.fr/vue_invite_horizontale.php?current_year=2024&current_week=7&groupes_multi%5B%5D=42&lar=1920&hau=1200"

type MockRoleSource struct {
	mock.Mock
}

func (m *MockRoleSource) RoleNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func SetupHandler(t *testing.T) *handlers.Handler {
	table, err := groups.Parse([]byte(`{"TP1A": "42", "TP2B": "\"43\"", "WTF": "0"}`))
	require.NoError(t, err)

	week7 := time.Date(2024, 2, 14, 10, 0, 0, 0, time.Local)
	return handlers.NewHandler(table).WithClock(func() time.Time { return week7 })
}

func TestEdtFromArgs(t *testing.T) {
	h := SetupHandler(t)
	ctx := context.Background()

	for _, args := range [][]string{{"1a"}, {"1A"}, {"tp", "1a"}, {"TP1A"}, {"tp1a", "ignored"}} {
		reply, err := h.Edt(ctx, args, nil)
		require.NoError(t, err)
		assert.Equal(t, week7Link, reply, args)
	}
}

func TestEdtUnknownGroup(t *testing.T) {
	h := SetupHandler(t)

	reply, err := h.Edt(context.Background(), []string{"9z"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Unknown group :(", reply)
}

func TestEdtBareTP(t *testing.T) {
	h := SetupHandler(t)

	// "wtf" upper-cases to WTF, which the table above happens to contain
	reply, err := h.Edt(context.Background(), []string{"tp"}, nil)
	require.NoError(t, err)
	assert.Contains(t, reply, "groupes_multi%5B%5D=0&")
}

func TestEdtFromRoles(t *testing.T) {
	h := SetupHandler(t)
	ctx := context.Background()

	roles := new(MockRoleSource)
	roles.On("RoleNames", ctx).Return([]string{"Other", "tp-1a", "2b"}, nil)

	reply, err := h.Edt(ctx, nil, roles)
	require.NoError(t, err)
	assert.Equal(t, "https://edt.iut-orsay.fr/vue_invite_horizontale.php?current_year=2024&current_week=7&groupes_multi%5B%5D=43&lar=1920&hau=1200", reply)
	roles.AssertExpectations(t)
}

func TestEdtRoleWithSeparators(t *testing.T) {
	h := SetupHandler(t)
	ctx := context.Background()

	roles := new(MockRoleSource)
	roles.On("RoleNames", ctx).Return([]string{"TP 1A"}, nil)

	reply, err := h.Edt(ctx, nil, roles)
	require.NoError(t, err)
	assert.Equal(t, week7Link, reply)
}

func TestEdtRoleLookupFailed(t *testing.T) {
	h := SetupHandler(t)
	ctx := context.Background()

	roles := new(MockRoleSource)
	roles.On("RoleNames", ctx).Return(nil, errors.New("role not found"))

	reply, err := h.Edt(ctx, nil, roles)
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, resolver.ErrRoleLookupFailed)
}

func TestReply(t *testing.T) {
	h := SetupHandler(t)
	ctx := context.Background()

	t.Run("Link", func(t *testing.T) {
		inv, ok := commands.Parse("/emploi tp-1a")
		require.True(t, ok)
		assert.Equal(t, week7Link, h.Reply(ctx, inv, nil))
	})

	t.Run("Unknown group", func(t *testing.T) {
		inv, ok := commands.Parse("/edt 3c")
		require.True(t, ok)
		assert.Equal(t, handlers.UnknownGroupReply, h.Reply(ctx, inv, nil))
	})

	t.Run("Too many arguments", func(t *testing.T) {
		inv, ok := commands.Parse("/edt tp 1 a")
		require.True(t, ok)
		assert.Equal(t, "Usage: /edt [tp] [groupe]", h.Reply(ctx, inv, nil))
	})

	t.Run("No group role", func(t *testing.T) {
		roles := new(MockRoleSource)
		roles.On("RoleNames", ctx).Return([]string{"Admin"}, nil)

		inv, ok := commands.Parse("/edt")
		require.True(t, ok)
		assert.Equal(t, handlers.RoleFailureReply, h.Reply(ctx, inv, roles))
	})

	t.Run("No member", func(t *testing.T) {
		inv, ok := commands.Parse("/agenda")
		require.True(t, ok)
		assert.Equal(t, handlers.RoleFailureReply, h.Reply(ctx, inv, nil))
	})
}
