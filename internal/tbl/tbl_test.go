package tbl

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "testdata"

// copyfixtures - a private copy of testdata so that files can be removed
func copyfixtures(t *testing.T, skip ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, fn := range RequiredFiles() {
		if contains(skip, fn) {
			continue
		}
		b, err := os.ReadFile(filepath.Join(fixtures, fn))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, fn), b, 0644))
	}
	return dir
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func TestReadCSVHeaderFixes(t *testing.T) {
	tb, err := CSVDir{Dir: fixtures}.Load(vv.FILEPREPROC)
	require.NoError(t, err)

	assert.Equal(t, "dataset", tb.Name)
	assert.Equal(t, "Unnamed: 0", tb.Header[0])
	assert.Equal(t, "title", tb.Header[1])
	assert.Equal(t, 7, tb.Len())

	d, err := tb.Column("description")
	require.NoError(t, err)
	assert.Equal(t, "KPU menetapkan DPT Pemilu 2024, sebanyak 204 juta pemilih.", d[0])
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	tb, err := ReadCSV(strings.NewReader("Topic,words\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Len())
	assert.Equal(t, []string{"Topic", "words"}, tb.Header)
}

func TestCSVDirMissingFile(t *testing.T) {
	_, err := CSVDir{Dir: t.TempDir()}.Load(vv.FILEDOCINFO)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadResults(t *testing.T) {
	r, err := LoadResults(CSVDir{Dir: fixtures})
	require.NoError(t, err)
	assert.Equal(t, 7, r.Preproc.Len())
	assert.Equal(t, 6, r.Embed.Len())
	assert.Equal(t, 7, r.Coherence.Len())
	assert.Equal(t, 20, r.DocInfo.Len())
	assert.Equal(t, 17, r.TopWords.Len())
}

func TestLoadResultsFailsOnAnyMissingFile(t *testing.T) {
	for _, fn := range RequiredFiles() {
		t.Run(fn, func(t *testing.T) {
			dir := copyfixtures(t, fn)
			_, err := LoadResults(CSVDir{Dir: dir})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), fn)
		})
	}
}

func TestNewSource(t *testing.T) {
	cfg := &str.CurrentConfiguration{DataDir: "/data"}
	assert.Equal(t, CSVDir{Dir: "/data"}, NewSource(cfg))

	cfg.SQLiteDB = "/data/topics.db"
	assert.Equal(t, SQLiteSource{Path: "/data/topics.db"}, NewSource(cfg))
}

func TestSQLiteSource(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "topics.db")
	db, err := sql.Open(SQLITEDRVR, fn)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE document_info (Document TEXT, Topic INTEGER, Name TEXT, date TEXT, score REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO document_info VALUES ('kpu pemilu', 0, '0_kpu_pemilu_suara', '01/09/2023', 0.25), ('anies', 1, '1_anies_muhaimin_amin', '02/09/2023', NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src := SQLiteSource{Path: fn}
	tb, err := src.Load(vv.FILEDOCINFO)
	require.NoError(t, err)
	assert.Equal(t, "document_info", tb.Name)
	assert.Equal(t, []string{"Document", "Topic", "Name", "date", "score"}, tb.Header)
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"kpu pemilu", "0", "0_kpu_pemilu_suara", "01/09/2023", "0.25"}, tb.Rows[0])
	assert.Equal(t, "", tb.Rows[1][4])

	_, err = src.Load(vv.FILETOPWORDS)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteSourceMissingDatabase(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "absent.db")
	_, err := SQLiteSource{Path: fn}.Load(vv.FILEDOCINFO)
	assert.ErrorIs(t, err, ErrNotFound)

	_, statErr := os.Stat(fn)
	assert.True(t, os.IsNotExist(statErr), "loading must not create the database")
}

func TestCoherenceColumn(t *testing.T) {
	tb, err := CSVDir{Dir: fixtures}.Load(vv.FILECOHERENCE)
	require.NoError(t, err)

	c, ok := CoherenceColumn(tb, "")
	assert.True(t, ok)
	assert.Equal(t, "Koherensi", c)

	_, ok = CoherenceColumn(tb, "c_v")
	assert.False(t, ok)

	_, ok = CoherenceColumn(str.Table{Header: []string{"Topic", "Count"}}, "")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	tb := str.Table{
		Name:   "t",
		Header: []string{"Koherensi", "Name"},
		Rows:   [][]string{{"0.2", "a"}, {"0.4", "b"}, {"", "c"}, {"NaN", "d"}, {"0.6", "e"}},
	}

	s, err := Describe(tb, "Koherensi")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 0.4, s.Mean, 1e-9)
	assert.InDelta(t, 0.2, s.Std, 1e-9)
	assert.InDelta(t, 0.2, s.Min, 1e-9)
	assert.InDelta(t, 0.6, s.Max, 1e-9)

	_, err = Describe(tb, "Name")
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Describe(tb, "absent")
	assert.ErrorIs(t, err, str.ErrMissingColumn)
}
