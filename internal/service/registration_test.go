package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/orderchat/internal/domain"
	domainmocks "github.com/avc/orderchat/internal/domain/mocks"
	"github.com/avc/orderchat/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistrationGate_Register(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Successful registration", func(t *testing.T) {
		mockStore := domainmocks.NewClientStoreMock(t)
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(mockStore, mockOrdering, time.Hour, logger)

		mockOrdering.EXPECT().Register(mock.Anything, domain.RegistrationRequest{
			CustomerName:  "Sam",
			CustomerPhone: "5551234",
			SessionID:     "sess-1",
		}).Return(&domain.RegistrationResponse{Success: true, Message: "Hi Sam"}, nil).Once()
		mockStore.EXPECT().SetMany(mock.Anything, map[string]string{
			domain.KeyRegistered:    domain.RegisteredValue,
			domain.KeyCustomerName:  "Sam",
			domain.KeyCustomerPhone: "5551234",
		}).Return(nil).Once()

		welcome, err := gate.Register(ctx, " Sam ", "5551234", "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "Hi Sam", welcome)
		assert.True(t, gate.IsRegistered())

		profile, ok := gate.Profile()
		assert.True(t, ok)
		assert.Equal(t, domain.CustomerProfile{Name: "Sam", Phone: "5551234"}, profile)
	})

	t.Run("Default welcome", func(t *testing.T) {
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(memory.NewStore(nil), mockOrdering, time.Hour, logger)

		mockOrdering.EXPECT().Register(mock.Anything, mock.Anything).
			Return(&domain.RegistrationResponse{Success: true}, nil).Once()

		welcome, err := gate.Register(ctx, "Sam", "5551234", "sess-1")
		require.NoError(t, err)
		assert.Equal(t, DefaultWelcomeMessage, welcome)
	})

	t.Run("Empty fields are rejected without a service call", func(t *testing.T) {
		mockStore := domainmocks.NewClientStoreMock(t)
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(mockStore, mockOrdering, time.Hour, logger)

		_, err := gate.Register(ctx, "", "5551234", "sess-1")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)

		_, err = gate.Register(ctx, "Sam", "   ", "sess-1")
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "phone", validationErr.Field)

		assert.False(t, gate.IsRegistered())
	})

	t.Run("Service failure leaves client unregistered", func(t *testing.T) {
		mockStore := domainmocks.NewClientStoreMock(t)
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(mockStore, mockOrdering, time.Hour, logger)

		mockOrdering.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, NewServiceError("register", 500, "boom")).Once()

		_, err := gate.Register(ctx, "Sam", "5551234", "sess-1")
		var regErr *RegistrationError
		require.ErrorAs(t, err, &regErr)
		assert.NotEmpty(t, regErr.UserMessage())
		assert.False(t, gate.IsRegistered())
	})

	t.Run("Already registered", func(t *testing.T) {
		store := memory.NewStore(map[string]string{
			domain.KeyRegistered:   domain.RegisteredValue,
			domain.KeyCustomerName: "Sam",
		})
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(store, mockOrdering, time.Hour, logger)
		gate.Load(ctx)

		_, err := gate.Register(ctx, "Other", "5550000", "sess-1")
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("Persistence failure still registers", func(t *testing.T) {
		mockStore := domainmocks.NewClientStoreMock(t)
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(mockStore, mockOrdering, time.Hour, logger)

		mockOrdering.EXPECT().Register(mock.Anything, mock.Anything).
			Return(&domain.RegistrationResponse{Success: true, Message: "Hi"}, nil).Once()
		mockStore.EXPECT().SetMany(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		welcome, err := gate.Register(ctx, "Sam", "5551234", "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "Hi", welcome)
		assert.True(t, gate.IsRegistered())
	})
}

func TestRegistrationGate_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Registered profile", func(t *testing.T) {
		store := memory.NewStore(map[string]string{
			domain.KeyRegistered:    domain.RegisteredValue,
			domain.KeyCustomerName:  "Sam",
			domain.KeyCustomerPhone: "5551234",
		})
		gate := NewRegistrationGate(store, domainmocks.NewOrderingServiceMock(t), time.Hour, zap.NewNop())
		gate.Load(ctx)

		profile, ok := gate.Profile()
		assert.True(t, ok)
		assert.Equal(t, "Sam", profile.Name)
		assert.Equal(t, domain.StatusRegistered, gate.Status())
	})

	t.Run("Other value means unregistered", func(t *testing.T) {
		store := memory.NewStore(map[string]string{domain.KeyRegistered: "yes"})
		gate := NewRegistrationGate(store, domainmocks.NewOrderingServiceMock(t), time.Hour, zap.NewNop())
		gate.Load(ctx)

		assert.False(t, gate.IsRegistered())
	})

	t.Run("Store error means unregistered", func(t *testing.T) {
		mockStore := domainmocks.NewClientStoreMock(t)
		mockStore.EXPECT().Get(mock.Anything, domain.KeyRegistered).Return("", errors.New("corrupt")).Once()

		gate := NewRegistrationGate(mockStore, domainmocks.NewOrderingServiceMock(t), time.Hour, zap.NewNop())
		gate.Load(ctx)

		assert.Equal(t, domain.StatusUnregistered, gate.Status())
	})
}

func TestRegistrationGate_Prompt(t *testing.T) {
	ctx := context.Background()

	t.Run("Shown after delay", func(t *testing.T) {
		gate := NewRegistrationGate(memory.NewStore(nil), domainmocks.NewOrderingServiceMock(t), 10*time.Millisecond, zap.NewNop())

		var shown atomic.Int32
		gate.SetPromptHook(func(open bool) {
			if open {
				shown.Add(1)
			}
		})

		gate.PromptIfUnregistered()
		gate.PromptIfUnregistered()

		require.Eventually(t, gate.PromptOpen, time.Second, 5*time.Millisecond)
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, int32(1), shown.Load())
	})

	t.Run("Dismissed prompt is not shown again", func(t *testing.T) {
		gate := NewRegistrationGate(memory.NewStore(nil), domainmocks.NewOrderingServiceMock(t), 5*time.Millisecond, zap.NewNop())

		closed := make(chan struct{}, 1)
		gate.SetPromptHook(func(open bool) {
			if !open {
				closed <- struct{}{}
			}
		})

		gate.PromptIfUnregistered()
		require.Eventually(t, gate.PromptOpen, time.Second, 5*time.Millisecond)

		gate.DismissPrompt()
		<-closed
		gate.PromptIfUnregistered()
		time.Sleep(20 * time.Millisecond)

		assert.False(t, gate.PromptOpen())
		assert.False(t, gate.IsRegistered())
	})

	t.Run("Registered client is not prompted", func(t *testing.T) {
		store := memory.NewStore(map[string]string{domain.KeyRegistered: domain.RegisteredValue})
		gate := NewRegistrationGate(store, domainmocks.NewOrderingServiceMock(t), time.Millisecond, zap.NewNop())
		gate.Load(ctx)

		gate.PromptIfUnregistered()
		time.Sleep(20 * time.Millisecond)

		assert.False(t, gate.PromptOpen())
	})

	t.Run("Registration closes prompt", func(t *testing.T) {
		mockOrdering := domainmocks.NewOrderingServiceMock(t)
		gate := NewRegistrationGate(memory.NewStore(nil), mockOrdering, time.Millisecond, zap.NewNop())

		mockOrdering.EXPECT().Register(mock.Anything, mock.Anything).
			Return(&domain.RegistrationResponse{Success: true}, nil).Once()

		gate.PromptIfUnregistered()
		require.Eventually(t, gate.PromptOpen, time.Second, 5*time.Millisecond)

		_, err := gate.Register(ctx, "Sam", "5551234", "sess-1")
		require.NoError(t, err)
		assert.False(t, gate.PromptOpen())
	})
}
