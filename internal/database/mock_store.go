package database

import (
	"context"
)

// MockStore runs transactions inline against a MockQuerier so handler
// tests can set expectations on queries issued inside ExecTx.
type MockStore struct {
	*MockQuerier

	// TxErr, when set, is returned from ExecTx without calling fn.
	TxErr error
}

var _ Store = (*MockStore)(nil)

func NewMockStore(q *MockQuerier) *MockStore {
	return &MockStore{MockQuerier: q}
}

func (m *MockStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	if m.TxErr != nil {
		return m.TxErr
	}
	return fn(m.MockQuerier)
}
