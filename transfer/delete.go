package transfer

import (
	"context"
	"errors"
	"strings"
)

// DeleteOutcome ...
type DeleteOutcome int

const (
	// DeleteFailed is returned together with an error.
	DeleteFailed DeleteOutcome = iota
	// Deleted means the object existed and was removed.
	Deleted
	// NotFound means there was no object at the path. It is not an error.
	NotFound
)

func (o DeleteOutcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case NotFound:
		return "not found"
	default:
		return "failed"
	}
}

// Delete removes the object at remotePath.
func (s *Session) Delete(ctx context.Context, remotePath string) (DeleteOutcome, error) {
	if strings.TrimSpace(remotePath) == "" {
		return DeleteFailed, newError(InputError, "delete", "", remotePath, errors.New("remote path is empty"))
	}

	key, err := s.client.GetKey(ctx, remotePath)
	if err != nil {
		return DeleteFailed, newError(BackendError, "delete", "", remotePath, err)
	}
	if key == nil {
		s.logger.Warnf("%s is not found", remotePath)
		return NotFound, nil
	}

	if err := s.client.DeleteKey(ctx, *key); err != nil {
		return DeleteFailed, newError(BackendError, "delete", "", remotePath, err)
	}
	s.logger.Donef("%s is deleted", remotePath)

	return Deleted, nil
}
