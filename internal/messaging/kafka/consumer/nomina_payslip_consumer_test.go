package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sara-api/internal/events"
	"sara-api/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type fakeGenerator struct {
	calls []uint
	errs  map[uint]error
	// failures makes an id fail that many times before succeeding
	failures map[uint]int
}

func (g *fakeGenerator) GeneratePayslips(_ context.Context, id uint) (int, error) {
	g.calls = append(g.calls, id)
	if err := g.errs[id]; err != nil {
		return 0, err
	}
	if g.failures[id] > 0 {
		g.failures[id]--
		return 0, errors.New("connection reset")
	}
	return 3, nil
}

func noBackoff(t *testing.T, attempts int) {
	t.Helper()
	prev := retryBackoff
	retryBackoff = make([]time.Duration, attempts)
	t.Cleanup(func() { retryBackoff = prev })
}

func eventMessage(t *testing.T, offset int64, nominaID uint) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(events.NominaPayslipRequestedEvent{
		EventType: events.NominaPayslipRequestedType,
		NominaID:  nominaID,
	})
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: raw}
}

func TestConsumeNominaPayslipRequested(t *testing.T) {
	noBackoff(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
		eventMessage(t, 1, 10),
		{Offset: 2, Value: []byte("not json")},
		eventMessage(t, 3, 11),
		eventMessage(t, 4, 12),
	}}
	gen := &fakeGenerator{errs: map[uint]error{
		11: apperror.ObjectNotFound("Nomina"),
		12: errors.New("connection reset"),
	}}

	ConsumeNominaPayslipRequested(ctx, reader, gen, zap.NewNop())

	// 12 keeps failing: first try plus two retries, then it is committed
	assert.Equal(t, []uint{10, 11, 12, 12, 12}, gen.calls)
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestConsumeNominaPayslipRequested_RetriesTransientFailure(t *testing.T) {
	noBackoff(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
		eventMessage(t, 4, 12),
		eventMessage(t, 5, 13),
	}}
	gen := &fakeGenerator{failures: map[uint]int{12: 1}}

	ConsumeNominaPayslipRequested(ctx, reader, gen, zap.NewNop())

	assert.Equal(t, []uint{12, 12, 13}, gen.calls)
	assert.Equal(t, []int64{4, 5}, reader.committed)
}

func TestHandleNominaPayslipMessage_StopsRetryingWhenCanceled(t *testing.T) {
	prev := retryBackoff
	retryBackoff = []time.Duration{time.Hour}
	t.Cleanup(func() { retryBackoff = prev })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &fakeReader{cancel: cancel}
	gen := &fakeGenerator{failures: map[uint]int{12: 1}}

	handleNominaPayslipMessage(ctx, reader, gen, eventMessage(t, 4, 12), zap.NewNop())

	assert.Equal(t, []uint{12}, gen.calls)
	assert.Empty(t, reader.committed)
}
