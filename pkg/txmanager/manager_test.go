package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
)

type mockTx struct {
	mock.Mock
}

func (m *mockTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (m *mockTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (m *mockTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (m *mockTx) Commit() error {
	return m.Called().Error(0)
}

func (m *mockTx) Rollback() error {
	return m.Called().Error(0)
}

type mockBeginner struct {
	mock.Mock
}

func (m *mockBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(dbmetrics.TxExecutor), args.Error(1)
}

func TestDoSerializable_Commit(t *testing.T) {
	tx := &mockTx{}
	tx.On("Commit").Return(nil).Once()
	db := &mockBeginner{}
	db.On("BeginTx", &sql.TxOptions{Isolation: sql.LevelSerializable}).Return(tx, nil).Once()

	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	tx.AssertExpectations(t)
	db.AssertExpectations(t)
}

func TestDo_RollbackOnError(t *testing.T) {
	tx := &mockTx{}
	tx.On("Rollback").Return(nil).Once()
	db := &mockBeginner{}
	db.On("BeginTx", (*sql.TxOptions)(nil)).Return(tx, nil).Once()

	boom := errors.New("boom")
	err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	tx.AssertNotCalled(t, "Commit")
	tx.AssertExpectations(t)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	tx := &mockTx{}
	tx.On("Commit").Return(nil).Once()
	db := &mockBeginner{}
	db.On("BeginTx", (*sql.TxOptions)(nil)).Return(tx, nil).Once()

	m := NewTransactionManager(db)
	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(inner context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	db.AssertNumberOfCalls(t, "BeginTx", 1)
}

func TestDo_BeginFails(t *testing.T) {
	db := &mockBeginner{}
	db.On("BeginTx", (*sql.TxOptions)(nil)).Return(nil, errors.New("conn refused")).Once()

	err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrTransaction)
}
