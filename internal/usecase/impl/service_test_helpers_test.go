package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// testLogger returns a logger whose output is thrown away.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// onExecute arms the transaction manager mock with a fresh repository
// factory configured by setup, then runs the transactional function for
// real so its return value propagates like a committed or rolled back
// transaction would.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
