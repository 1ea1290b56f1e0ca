package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evs ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evs...)
	return nil
}

func newOrder(t *testing.T, customerID kernel.UUID, total string, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(),
		kernel.MustParseMoney(total), "Rua F, 3", "", createdAt)
	require.NoError(t, err)
	return o
}

func newCustomer(t *testing.T, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Joana Prado", email, "11912345678", "", time.Now())
	require.NoError(t, err)
	return c
}

func TestUnitOfWork_CommitMakesChangesVisible(t *testing.T) {
	ctx := t.Context()
	publisher := &recordingPublisher{}
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, zerolog.Nop())
	o := newOrder(t, kernel.NewUUID(), "20.00", time.Now())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	assert.Empty(t, publisher.events, "events wait for commit")
	require.NoError(t, uow.Commit(ctx))

	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, got.Status())
	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.EventCreated, publisher.events[0].Kind)
}

func TestUnitOfWork_RollbackDiscardsChanges(t *testing.T) {
	ctx := t.Context()
	publisher := &recordingPublisher{}
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, zerolog.Nop())
	o := newOrder(t, kernel.NewUUID(), "20.00", time.Now())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Rollback(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.events)
}

func TestUnitOfWork_TransactionControlOutsideTransaction(t *testing.T) {
	uow := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop()).Create()

	require.ErrorIs(t, uow.Commit(t.Context()), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(t.Context()), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_RollbackAfterCommitIsHarmless(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
	require.Error(t, uow.Rollback(ctx))

	// the store lock must be free again
	next := factory.Create()
	require.NoError(t, next.Begin(ctx))
	require.NoError(t, next.Commit(ctx))
}

func TestUnitOfWork_SerializesTransactions(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), nil, zerolog.Nop())
	const workers = 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()
			repo := uow.CustomerRepository()
			if taken, _ := repo.ExistsByEmail(ctx, "race@example.com", nil); taken {
				return
			}
			c, err := customer.NewCustomer(kernel.NewUUID(), "Race Winner", "race@example.com", "11912345678", "", time.Now())
			if err != nil {
				return
			}
			if repo.Add(ctx, c) == nil {
				_ = uow.Commit(ctx)
			}
		}()
	}
	wg.Wait()

	found, err := factory.Create().CustomerRepository().Find(ctx, customer.Criteria{Email: "race@example.com"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
