package ogmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/ogmeta"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ogmeta.Errorf(ogmeta.ENOTFOUND, "page %q not found", "https://example.com")

	assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com\" not found", ogmeta.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("save page: %w", ogmeta.Errorf(ogmeta.EINVALID, "page URL required"))

	assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(err))
	assert.Equal(t, "page URL required", ogmeta.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, ogmeta.EINTERNAL, ogmeta.ErrorCode(err))
	assert.Equal(t, "Internal error.", ogmeta.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ogmeta.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ogmeta.ErrorMessage(nil))
}
