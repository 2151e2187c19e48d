package subscription_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/responsive/internal/core/ports/mocks"
	"go.trai.ch/responsive/internal/engine/subscription"
	"go.uber.org/mock/gomock"
)

type modernList struct {
	*mocks.MockMediaQueryList
	*mocks.MockEventTarget
}

type legacyList struct {
	*mocks.MockMediaQueryList
	*mocks.MockLegacyTarget
}

type dualList struct {
	*mocks.MockMediaQueryList
	*mocks.MockEventTarget
	*mocks.MockLegacyTarget
}

func TestListen_Modern(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := modernList{mocks.NewMockMediaQueryList(ctrl), mocks.NewMockEventTarget(ctrl)}
	l := ports.NewListener(func(ports.MediaQueryEvent) {})

	list.MockEventTarget.EXPECT().AddEventListener(ports.ChangeEvent, l).Return(nil)
	list.MockEventTarget.EXPECT().RemoveEventListener(ports.ChangeEvent, l).Return(nil).Times(1)

	cancel, err := subscription.Listen(list, l)
	require.NoError(t, err)

	cancel()
	cancel()
}

func TestListen_ModernFailsFallsBackToLegacy(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := dualList{mocks.NewMockMediaQueryList(ctrl), mocks.NewMockEventTarget(ctrl), mocks.NewMockLegacyTarget(ctrl)}
	l := ports.NewListener(func(ports.MediaQueryEvent) {})

	gomock.InOrder(
		list.MockEventTarget.EXPECT().AddEventListener(ports.ChangeEvent, l).Return(errors.New("not supported")),
		list.MockLegacyTarget.EXPECT().AddListener(l),
		list.MockLegacyTarget.EXPECT().RemoveListener(l),
	)

	cancel, err := subscription.Listen(list, l)
	require.NoError(t, err)
	cancel()
}

func TestListen_ModernRemoveFailsFallsBackToLegacy(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := dualList{mocks.NewMockMediaQueryList(ctrl), mocks.NewMockEventTarget(ctrl), mocks.NewMockLegacyTarget(ctrl)}
	l := ports.NewListener(func(ports.MediaQueryEvent) {})

	list.MockEventTarget.EXPECT().AddEventListener(ports.ChangeEvent, l).Return(nil)
	list.MockEventTarget.EXPECT().RemoveEventListener(ports.ChangeEvent, l).Return(errors.New("not supported"))
	list.MockLegacyTarget.EXPECT().RemoveListener(l)

	cancel, err := subscription.Listen(list, l)
	require.NoError(t, err)
	cancel()
}

func TestListen_LegacyOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := legacyList{mocks.NewMockMediaQueryList(ctrl), mocks.NewMockLegacyTarget(ctrl)}
	l := ports.NewListener(func(ports.MediaQueryEvent) {})

	list.MockLegacyTarget.EXPECT().AddListener(l)
	list.MockLegacyTarget.EXPECT().RemoveListener(l)

	cancel, err := subscription.Listen(list, l)
	require.NoError(t, err)
	cancel()
}

func TestListen_ModernFailsWithoutFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := modernList{mocks.NewMockMediaQueryList(ctrl), mocks.NewMockEventTarget(ctrl)}
	l := ports.NewListener(func(ports.MediaQueryEvent) {})

	list.MockEventTarget.EXPECT().AddEventListener(ports.ChangeEvent, l).Return(errors.New("boom"))

	cancel, err := subscription.Listen(list, l)
	require.Error(t, err)
	assert.Nil(t, cancel)
	assert.ErrorContains(t, err, domain.ErrSubscriptionUnavailable.Error())
}

func TestSelect_NoShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	list := mocks.NewMockMediaQueryList(ctrl)
	list.EXPECT().Media().Return("(min-width: 0px)")

	_, err := subscription.Select(list)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSubscriptionUnavailable.Error())
}
