package surf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/surfgo/codec"
	"github.com/hupe1980/surfgo/feature"
)

func TestFamily(t *testing.T) {
	d := FromRaw([]float32{0.25, -0.75, 1.5})
	fam := Family()

	t.Run("DecodeBytes", func(t *testing.T) {
		f, err := fam.DecodeBytes(d.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 0.0, d.Distance(f))

		f, err = fam.DecodeBytes([]byte{1})
		assert.ErrorIs(t, err, codec.ErrMalformedEncoding)
		assert.Nil(t, f)
	})

	t.Run("DecodeBytesRange", func(t *testing.T) {
		buf := append([]byte{0}, d.Bytes()...)
		f, err := fam.DecodeBytesRange(buf, 1, 24)
		require.NoError(t, err)
		assert.Equal(t, d.Values(), f.Values())

		f, err = fam.DecodeBytesRange(buf, 1, 32)
		assert.ErrorIs(t, err, codec.ErrOutOfRange)
		assert.Nil(t, f)
	})

	t.Run("DecodeText", func(t *testing.T) {
		f, err := fam.DecodeText("0 0 0 0.25 -0.75 1.5")
		require.NoError(t, err)
		assert.Equal(t, 0.0, d.Distance(f))

		f, err = fam.DecodeText("0")
		assert.ErrorIs(t, err, codec.ErrMalformedEncoding)
		assert.Nil(t, f)
	})
}

func TestFamilyIsCopy(t *testing.T) {
	fam := Family()
	assert.Equal(t, Tag, fam.Tag)
	assert.Equal(t, FieldName, fam.Field)

	fam.DecodeBytes = nil
	fam.Tag = "CEDD"

	fresh := Family()
	assert.Equal(t, Tag, fresh.Tag)
	require.NotNil(t, fresh.DecodeBytes)
	f, err := fresh.DecodeBytes(FromRaw([]float32{1}).Bytes())
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, f.Values())
}

func TestRegister(t *testing.T) {
	r := feature.NewRegistry()
	require.NoError(t, Register(r))

	fam, err := r.ByField(FieldName)
	require.NoError(t, err)
	assert.Equal(t, Tag, fam.Tag)

	assert.ErrorIs(t, Register(r), feature.ErrDuplicateFamily)
}
