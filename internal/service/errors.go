package service

import (
	"errors"
	"fmt"

	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"
)

// storageError wraps a repository failure for the client. Connection-level
// failures map to 503 and everything else to 500.
func storageError(err error, message string) error {
	if repository.IsUnavailable(err) {
		return model.NewAppError("STORAGE_UNAVAILABLE", "The database is temporarily unavailable. Please retry.", "",
			fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err))
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

func notFound(code, message, field string) error {
	return model.NewAppError(code, message, field, model.ErrNotFound)
}

// txError maps the error returned by a transaction. AppErrors raised inside
// the callback pass through; begin and commit failures go through storageError.
func txError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return storageError(err, message)
}
