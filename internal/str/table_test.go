package str

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Table {
	return Table{
		Name:   "document_info",
		Header: []string{"Document", "Name", "date"},
		Rows: [][]string{
			{"a", "0_kpu_pemilu", "01/09/2023"},
			{"b", "1_anies_cak", "02/09/2023"},
			{"c"},
		},
	}
}

func TestTableHead(t *testing.T) {
	tb := sample()
	assert.Equal(t, 2, tb.Head(2).Len())
	assert.Equal(t, 3, tb.Head(50).Len())
	assert.Equal(t, 0, tb.Head(-1).Len())
	assert.Equal(t, tb.Header, tb.Head(1).Header)
}

func TestTableColumn(t *testing.T) {
	tb := sample()
	vals, err := tb.Column("Name")
	require.NoError(t, err)
	assert.Equal(t, []string{"0_kpu_pemilu", "1_anies_cak", ""}, vals)

	_, err = tb.Column("Topic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestTableSelect(t *testing.T) {
	tb := sample()
	sel, err := tb.Select("date", "Document")
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "Document"}, sel.Header)
	assert.Equal(t, []string{"01/09/2023", "a"}, sel.Rows[0])
	assert.Equal(t, []string{"", "c"}, sel.Rows[2])

	_, err = tb.Select("date", "nope")
	assert.ErrorIs(t, err, ErrMissingColumn)
}
