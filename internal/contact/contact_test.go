package contact

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func valid() Message {
	return Message{Name: "Salma", Email: "Salma@Example.org ", Message: "I'd like to ask about prints."}
}

func TestSubmitAcceptsValidMessage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(zap.New(core), 60, 3)

	receipt, msg, err := svc.Submit("1.2.3.4", valid())
	require.NoError(t, err)
	require.Equal(t, "salma@example.org", msg.Email)
	_, err = ulid.ParseStrict(receipt.Reference)
	require.NoError(t, err)
	require.False(t, receipt.Discarded)
	require.Equal(t, 1, logs.FilterMessage("contact message received").Len())
}

func TestSubmitReportsFieldErrors(t *testing.T) {
	svc := NewService(nil, 60, 3)

	_, _, err := svc.Submit("ip", Message{Email: "not-an-email", Message: "<b></b>"})
	require.Error(t, err)
	fields := FieldErrors(err)
	require.Equal(t, CodeRequired, fields["Name"])
	require.Equal(t, CodeEmail, fields["Email"])
	// markup is stripped before validation, leaving nothing
	require.Equal(t, CodeRequired, fields["Message"])
}

func TestSubmitRejectsLongMessages(t *testing.T) {
	svc := NewService(nil, 60, 3)
	msg := valid()
	long := make([]rune, maxMessage+1)
	for i := range long {
		long[i] = 'ع'
	}
	msg.Message = string(long)
	_, _, err := svc.Submit("ip", msg)
	require.Equal(t, CodeLength, FieldErrors(err)["Message"])
}

func TestSubmitStripsMarkup(t *testing.T) {
	svc := NewService(nil, 60, 3)
	msg := valid()
	msg.Message = `hello <script>alert(1)</script><a href="x">there</a>`
	_, got, err := svc.Submit("ip", msg)
	require.NoError(t, err)
	require.Equal(t, "hello there", got.Message)
}

func TestRateLimitPerClient(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	svc := NewService(nil, 1, 2)
	svc.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		_, _, err := svc.Submit("a", valid())
		require.NoError(t, err)
	}
	_, _, err := svc.Submit("a", valid())
	require.ErrorIs(t, err, ErrRateLimited)

	// another client is unaffected
	_, _, err = svc.Submit("b", valid())
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, _, err = svc.Submit("a", valid())
	require.NoError(t, err)
}

func TestHoneypotIsAcknowledgedButDiscarded(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(zap.New(core), 60, 3)
	msg := valid()
	msg.Website = "http://spam.example"
	receipt, _, err := svc.Submit("ip", msg)
	require.NoError(t, err)
	require.True(t, receipt.Discarded)
	require.Zero(t, logs.FilterMessage("contact message received").Len())
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	require.Nil(t, FieldErrors(ErrRateLimited))
}
