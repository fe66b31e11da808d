package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// Repositories returns a factory whose repositories run outside any transaction,
	// each statement committing on its own.
	Repositories() RepositoryFactory
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewProfileRepository returns a ProfileRepository bound to the current scope.
	NewProfileRepository() ProfileRepository

	// NewNovelRepository returns a NovelRepository bound to the current scope.
	NewNovelRepository() NovelRepository

	// NewChapterRepository returns a ChapterRepository bound to the current scope.
	NewChapterRepository() ChapterRepository

	// NewUnlockRepository returns an UnlockRepository bound to the current scope.
	NewUnlockRepository() UnlockRepository
}
