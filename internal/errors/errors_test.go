package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchiveError(t *testing.T) {
	base := errors.New("boom")

	err := NewArchiveError("read", "a.txtar", base)
	assert.Equal(t, "read a.txtar: boom", err.Error())
	assert.ErrorIs(t, err, base)

	err = NewArchiveError("read", "", base)
	assert.Equal(t, "read: boom", err.Error())
}

func TestEntryError(t *testing.T) {
	err := NewEntryError("a.txt", ErrFileNotFound)
	assert.Equal(t, `"a.txt": ファイルが見つかりません`, err.Error())
	assert.ErrorIs(t, err, ErrFileNotFound)

	var entryErr *EntryError
	assert.True(t, errors.As(error(err), &entryErr))
	assert.Equal(t, "a.txt", entryErr.Name)
}
