package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockedFactory(t *testing.T) (*postgres_adapter.GormUnitOfWorkFactory, sqlmock.Sqlmock, *recordingPublisher) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	return postgres_adapter.NewGormUnitOfWorkFactory(db, publisher, zerolog.Nop()), mock, publisher
}

func deliveringOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustParseMoney("30.00"), "Rua A", "", order.OutForDelivery, now.Add(-time.Hour), nil)
	require.NoError(t, err)
	require.NoError(t, o.ChangeStatus(order.Delivered, order.Strict, now))
	return o
}

func TestGormUnitOfWork_CommitPublishesTrackedEvents(t *testing.T) {
	ctx := context.Background()
	factory, mock, publisher := newMockedFactory(t)
	o := deliveringOrder(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Update(ctx, o))
	assert.Empty(t, publisher.kinds())
	require.NoError(t, uow.Commit(ctx))

	assert.Equal(t, []order.EventKind{order.EventStatusChanged}, publisher.kinds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUnitOfWork_FailedCommitPublishesNothing(t *testing.T) {
	ctx := context.Background()
	factory, mock, publisher := newMockedFactory(t)
	o := deliveringOrder(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Update(ctx, o))
	assert.Error(t, uow.Commit(ctx))

	assert.Empty(t, publisher.kinds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUnitOfWork_UpdateOfMissingRowRollsBack(t *testing.T) {
	ctx := context.Background()
	factory, mock, publisher := newMockedFactory(t)
	o := deliveringOrder(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	err := uow.OrderRepository().Update(ctx, o)
	require.Error(t, err)
	require.NoError(t, uow.Rollback(ctx))

	assert.Empty(t, publisher.kinds())
	assert.NoError(t, mock.ExpectationsWereMet())
}
