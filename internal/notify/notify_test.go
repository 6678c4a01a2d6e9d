package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderApprovalTiers(t *testing.T) {
	tests := []struct {
		tier        int
		wantSubject string
		wantInBody  string
	}{
		{1, "Your membership received its first approval", "Two more approvals"},
		{2, "Your membership is almost approved", "one more approval"},
		{3, "Welcome! Your membership is fully approved", "fully active"},
	}

	for _, tt := range tests {
		ev := Event{Kind: KindApprovalTier, Name: "Asha", AdminName: "Admin A", Tier: tt.tier}
		subject, body := Render(ev)
		assert.Equal(t, tt.wantSubject, subject)
		assert.Contains(t, body, "Asha")
		assert.Contains(t, body, "Admin A")
		assert.Contains(t, body, tt.wantInBody)
	}
}

func TestRenderMutualMatch(t *testing.T) {
	subject, body := Render(Event{Kind: KindMutualMatch, Name: "Asha", MatchName: "Raj"})
	assert.Equal(t, "You have a mutual match!", subject)
	assert.Contains(t, body, "Asha")
	assert.Contains(t, body, "Raj")
}

type fakeSender struct {
	sent []string
	err  error
}

func (s *fakeSender) Send(to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func TestDeliverSkipsEmptyRecipient(t *testing.T) {
	sender := &fakeSender{}
	w := NewWorker(nil, sender)

	w.Deliver(Event{Kind: KindApprovalTier, Name: "Asha", Tier: 1})

	assert.Empty(t, sender.sent)
}

func TestDeliverSends(t *testing.T) {
	sender := &fakeSender{}
	w := NewWorker(nil, sender)

	w.Deliver(Event{Kind: KindApprovalTier, Recipient: "asha@example.com", Name: "Asha", Tier: 1})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "asha@example.com", sender.sent[0])
}

// Transport failures are logged and counted, never propagated.
func TestDeliverSwallowsTransportErrors(t *testing.T) {
	sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
	w := NewWorker(nil, sender)

	assert.NotPanics(t, func() {
		w.Deliver(Event{Kind: KindApprovalTier, Recipient: "asha@example.com", Name: "Asha", Tier: 1})
	})
}
