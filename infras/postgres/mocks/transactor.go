package mocks

import (
	"context"

	"hms/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
	beginErr error
}

// WithTransaction implements postgres.Transactor. fn receives a nil tx.
func (t *transactorImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	if t.beginErr != nil {
		return t.beginErr
	}

	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}

// NewFailingTransactor returns a transactor whose transactions never start.
func NewFailingTransactor(err error) postgres.Transactor {
	return &transactorImpl{beginErr: err}
}
