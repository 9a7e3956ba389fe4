package session

import (
	"comms/contract"
	"comms/domain"
	"comms/mocks"
	"context"

	"github.com/samber/lo"
	"go.uber.org/mock/gomock"
)

func texts(messages []domain.Message) []string {
	return lo.Map(messages, func(m domain.Message, _ int) string { return m.Text })
}

func self() *domain.Participant {
	return domain.NewParticipant("me@example.org", SelfName)
}

func start(s *ProtocolSession, err error) (*ProtocolSession, error) {
	if err == nil {
		s.Start()
	}
	return s, err
}

// negotiatingChannel expects a channel to go through capabilities and
// subscription, then answer the pending enumeration with list. The observer
// the session subscribed is stored in observer.
func negotiatingChannel(channel *mocks.MockTextChannel, observer *contract.ChannelObserver,
	list func(ctx context.Context) ([]contract.BackendMessage, error)) {
	channel.EXPECT().BecomeReady(gomock.Any(), gomock.Any()).
		Do(func(features []contract.ChannelFeature, done func(error)) { done(nil) })
	channel.EXPECT().Subscribe(gomock.Any()).
		DoAndReturn(func(o contract.ChannelObserver) func() {
			*observer = o
			return func() {}
		})
	channel.EXPECT().ListPendingMessages(gomock.Any()).DoAndReturn(list)
}

func grantChannel(backend *mocks.MockBackendConnection, address string, channel contract.TextChannel) {
	backend.EXPECT().RequestTextChannel(address, gomock.Any()).
		Do(func(_ string, done func(contract.TextChannel, error)) { done(channel, nil) })
}
