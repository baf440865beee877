package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	authdomain "github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/chat/domain"
)

type seedLookup struct{}

func (seedLookup) GetProfile(id string) (authdomain.AdminProfile, error) {
	for _, a := range authdomain.SeedAdmins() {
		if a.ID == id {
			return a, nil
		}
	}
	return authdomain.AdminProfile{}, authdomain.ErrAdminNotFound
}

type echoResponder struct{}

func (echoResponder) Reply(_, adminName, text string) string { return adminName + ": " + text }

func TestSendThenReply(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewChatService(seedLookup{}, 20*time.Millisecond, nil)
	defer svc.Close()

	msg, err := svc.Send(context.Background(), "USER42", "admin-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "USER42", msg.Sender)
	assert.False(t, msg.IsAdmin)

	msgs, err := svc.Messages("USER42", "admin-1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Text)

	require.Eventually(t, func() bool {
		msgs, _ := svc.Messages("USER42", "admin-1")
		return len(msgs) == 2
	}, time.Second, 5*time.Millisecond)

	msgs, _ = svc.Messages("USER42", "admin-1")
	reply := msgs[1]
	assert.True(t, reply.IsAdmin)
	assert.Equal(t, "SilverHold Official", reply.Sender)
	assert.Equal(t, "Hello USER42! Thanks for contacting me. How can I help you with our source codes today?", reply.Text)

	time.Sleep(50 * time.Millisecond)
	msgs, _ = svc.Messages("USER42", "admin-1")
	assert.Len(t, msgs, 2, "exactly one reply per message")
}

func TestConversationsAreIsolated(t *testing.T) {
	svc := NewChatService(seedLookup{}, time.Hour, nil)
	defer svc.Close()

	ctx := context.Background()
	_, err := svc.Send(ctx, "USER1", "admin-1", "a")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "USER2", "admin-1", "b")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "USER1", "admin-2", "c")
	require.NoError(t, err)

	msgs, _ := svc.Messages("USER1", "admin-1")
	require.Len(t, msgs, 1)
	assert.Equal(t, "a", msgs[0].Text)

	msgs, _ = svc.Messages("USER2", "admin-2")
	assert.Empty(t, msgs)
}

func TestSendValidation(t *testing.T) {
	svc := NewChatService(seedLookup{}, time.Hour, nil)
	defer svc.Close()

	_, err := svc.Send(context.Background(), "USER1", "admin-1", "  \n")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = svc.Send(context.Background(), "USER1", "ghost", "hi")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)

	_, err = svc.Messages("USER1", "ghost")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}

func TestRapidMessagesEachGetOneReply(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewChatService(seedLookup{}, 10*time.Millisecond, nil, WithResponder(echoResponder{}))
	defer svc.Close()

	ctx := context.Background()
	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.Send(ctx, "USER7", "admin-2", text)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		msgs, _ := svc.Messages("USER7", "admin-2")
		return len(msgs) == 6
	}, time.Second, 5*time.Millisecond)

	msgs, _ := svc.Messages("USER7", "admin-2")
	var replies []string
	for _, m := range msgs {
		if m.IsAdmin {
			replies = append(replies, m.Text)
		}
	}
	assert.ElementsMatch(t, []string{"Brayn Official: one", "Brayn Official: two", "Brayn Official: three"}, replies)
}

func TestSubscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewChatService(seedLookup{}, 5*time.Millisecond, nil)
	defer svc.Close()

	ch, cancel, err := svc.Subscribe("USER9", "admin-1")
	require.NoError(t, err)
	defer cancel()

	_, err = svc.Send(context.Background(), "USER9", "admin-1", "ping")
	require.NoError(t, err)

	first := <-ch
	assert.Equal(t, "ping", first.Text)

	select {
	case second := <-ch:
		assert.True(t, second.IsAdmin)
	case <-time.After(time.Second):
		t.Fatal("reply not delivered to subscriber")
	}

	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestCloseStopsPendingReplies(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewChatService(seedLookup{}, 30*time.Millisecond, nil)
	ch, cancel, err := svc.Subscribe("USER3", "admin-1")
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), "USER3", "admin-1", "hi")
	require.NoError(t, err)
	<-ch

	svc.Close()
	svc.Close()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	time.Sleep(60 * time.Millisecond)
	msgs, _ := svc.Messages("USER3", "admin-1")
	assert.Len(t, msgs, 1)

	_, err = svc.Send(context.Background(), "USER3", "admin-1", "again")
	assert.ErrorIs(t, err, domain.ErrClosed)
}
