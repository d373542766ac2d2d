package helixdoc_test

import (
	"testing"

	"github.com/fwojciec/helixdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		err := (&helixdoc.Snapshot{}).Validate()

		require.Error(t, err)
		assert.Equal(t, helixdoc.EINVALID, helixdoc.ErrorCode(err))
	})

	t.Run("accepts snapshot with source URL", func(t *testing.T) {
		t.Parallel()

		s := &helixdoc.Snapshot{SourceURL: helixdoc.DefaultReferenceURL}

		assert.NoError(t, s.Validate())
	})
}

func TestCachedDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		err := (&helixdoc.CachedDocument{HTML: "<html></html>"}).Validate()

		require.Error(t, err)
		assert.Equal(t, helixdoc.EINVALID, helixdoc.ErrorCode(err))
	})
}
