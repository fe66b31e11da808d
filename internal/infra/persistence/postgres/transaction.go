package postgres

import (
	"context"
	"fmt"

	"novelhub/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// db is either a transaction handle or the root connection; repositories built from it
// share that scope.
type gormRepositoryFactory struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository bound to the factory scope.
func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.db)
}

// NewNovelRepository creates a novel repository bound to the factory scope.
func (f *gormRepositoryFactory) NewNovelRepository() repository.NovelRepository {
	return NewNovelRepository(f.db)
}

// NewChapterRepository creates a chapter repository bound to the factory scope.
func (f *gormRepositoryFactory) NewChapterRepository() repository.ChapterRepository {
	return NewChapterRepository(f.db)
}

// NewUnlockRepository creates an unlock repository bound to the factory scope.
func (f *gormRepositoryFactory) NewUnlockRepository() repository.UnlockRepository {
	return NewUnlockRepository(f.db)
}

// NewRepositoryFactory returns a factory whose repositories use db directly.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{db: db}
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Repositories returns a factory bound to the root connection. Every statement
// issued through it commits on its own.
func (tm *gormTransactionManager) Repositories() repository.RepositoryFactory {
	return NewRepositoryFactory(tm.db)
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic, then re-panic so the recover middleware still sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
