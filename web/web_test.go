package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/tbl"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../internal/tbl/testdata"

// withdata - point the server at dir for the length of the test
func withdata(t *testing.T, dir string) {
	t.Helper()
	saved := *lnch.Config
	lnch.Config.DataDir = dir
	lnch.Config.SQLiteDB = ""
	Msg.Out = io.Discard
	t.Cleanup(func() { *lnch.Config = saved })
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		label string
		want  Page
		bad   bool
	}{
		{"", PageHome, false},
		{"Home", PageHome, false},
		{"Proses", PageResults, false},
		{" Proses ", PageResults, false},
		{"proses", PageHome, true},
		{"Admin", PageHome, true},
	}
	for _, tt := range tests {
		p, err := ParsePage(tt.label)
		if tt.bad {
			assert.ErrorIs(t, err, ErrUnknownPage, tt.label)
			continue
		}
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, p, tt.label)
	}
	assert.Equal(t, "Home", PageHome.String())
	assert.Equal(t, "Proses", PageResults.String())
}

func TestHomePage(t *testing.T) {
	withdata(t, fixtures)
	e := NewEchoServer()

	for _, target := range []string{"/", "/?page=Home", "/home"} {
		rec := get(t, e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		b := rec.Body.String()
		assert.Contains(t, b, "Home Page")
		assert.Contains(t, b, "Selamat datang di sistem Topic Modeling")
		assert.Contains(t, b, vv.DETIKURL)
		assert.Contains(t, b, "Kunjungi BERTopic")
		assert.Contains(t, b, "/emb/images/default.svg")
		assert.Contains(t, b, `width="400"`)
		assert.Contains(t, b, "Navigasi")
		assert.Contains(t, b, "Pilih halaman")
		assert.Contains(t, b, `value="Home" checked`)
		assert.NotContains(t, b, "echarts.min.js")
	}
}

func TestResultsPage(t *testing.T) {
	withdata(t, fixtures)
	e := NewEchoServer()

	for _, target := range []string{"/?page=Proses", "/proses"} {
		rec := get(t, e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		b := rec.Body.String()

		sections := []string{
			"BERTopic Page",
			"Hasil Preprocessing",
			"Hasil Embedding dan Reduksi Dimensi",
			"Informasi Topik dengan Koherensi",
			"Informasi Dokumen",
			"data:image/png;base64,",
			"Trend Pemberitaan Berdasarkan Tanggal",
			"Trend Pemberitaan Berdasarkan Tanggal untuk 5 Topik Utama",
		}
		last := -1
		for _, s := range sections {
			i := strings.Index(b, s)
			require.GreaterOrEqual(t, i, 0, "missing %s", s)
			assert.Greater(t, i, last, "%s is out of order", s)
			last = i
		}

		assert.Contains(t, b, `value="Proses" checked`)
		assert.Contains(t, b, "description_stopword")
		assert.NotContains(t, b, "<th>title</th>", "only the four description columns are previewed")
		assert.Contains(t, b, "Koherensi")
		assert.Contains(t, b, "Jumlah dokumen: 20")
		assert.Contains(t, b, "echarts.min.js")
		assert.NotContains(t, b, "6_hoaks_kominfo_isu</")
	}
}

func TestResultsPreviewIsFiveRows(t *testing.T) {
	withdata(t, fixtures)
	h, err := RenderResults(tbl.NewSource(lnch.Config))
	require.NoError(t, err)

	// dataset.csv has 7 rows: 0..4 are shown
	assert.Contains(t, h, "<th>4</th>")
	assert.NotContains(t, h, "<th>5</th><td>")
}

func TestResultsMissingFile(t *testing.T) {
	for _, missing := range tbl.RequiredFiles() {
		dir := t.TempDir()
		for _, fn := range tbl.RequiredFiles() {
			if fn == missing {
				continue
			}
			b, err := os.ReadFile(filepath.Join(fixtures, fn))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, fn), b, 0644))
		}

		withdata(t, dir)
		e := NewEchoServer()
		rec := get(t, e, "/?page=Proses")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, missing)
		assert.NotContains(t, rec.Body.String(), "BERTopic Page", "no partial page when %s is missing", missing)
		assert.NotContains(t, rec.Body.String(), "Hasil Preprocessing")
	}
}

func TestResultsBadDate(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range tbl.RequiredFiles() {
		b, err := os.ReadFile(filepath.Join(fixtures, fn))
		require.NoError(t, err)
		if fn == vv.FILEDOCINFO {
			b = []byte("Document,Topic,Name,date\nx,0,0_a,2023-09-01\n")
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, fn), b, 0644))
	}
	withdata(t, dir)

	rec := get(t, NewEchoServer(), "/proses")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Hasil Preprocessing")
}

func TestResultsTopicLabelsStayText(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range tbl.RequiredFiles() {
		b, err := os.ReadFile(filepath.Join(fixtures, fn))
		require.NoError(t, err)
		if fn == vv.FILEDOCINFO {
			b = []byte("Document,Topic,Name,date\nx,0,</script><script>alert(1)</script>,01/09/2023\ny,1,1_a,2/9/2023\n")
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, fn), b, 0644))
	}
	withdata(t, dir)

	rec := get(t, NewEchoServer(), "/proses")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)")
	assert.Contains(t, rec.Body.String(), "Jumlah dokumen: 2")
}

func TestUnknownPage(t *testing.T) {
	withdata(t, fixtures)
	rec := get(t, NewEchoServer(), "/?page=Nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPNGRoutes(t *testing.T) {
	withdata(t, fixtures)
	e := NewEchoServer()

	for _, target := range []string{"/proses/trend/date.png", "/proses/trend/topics.png", "/proses/wordcloud.png"} {
		rec := get(t, e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, PNGMIME, rec.Header().Get(echo.HeaderContentType), target)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"), target)
	}
}

func TestPNGRoutesMissingData(t *testing.T) {
	withdata(t, t.TempDir())
	e := NewEchoServer()
	rec := get(t, e, "/proses/trend/date.png")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEmbeddedAssets(t *testing.T) {
	withdata(t, t.TempDir())
	e := NewEchoServer()

	rec := get(t, e, "/emb/images/default.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = get(t, e, "/emb/css/btb.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css", rec.Header().Get(echo.HeaderContentType))

	rec = get(t, e, "/emb/css/nothere.css")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomeImageOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.HOMEIMAGE), []byte(`<svg id="local"></svg>`), 0644))
	withdata(t, dir)

	rec := get(t, NewEchoServer(), "/emb/images/default.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<svg id="local"></svg>`, rec.Body.String())
}

func TestDataDirIsNotServed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BTB_SECRET=hunter2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.CONFIGBASIC), []byte(`{"SQLiteDB":"secret.db"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, vv.FILEDOCINFO), []byte("Document,Topic,Name,date\n"), 0644))
	withdata(t, dir)
	e := NewEchoServer()

	for _, target := range []string{"/emb/images/.env", "/emb/images/" + vv.CONFIGBASIC, "/emb/images/" + vv.FILEDOCINFO, "/emb/images/..%2f.env"} {
		rec := get(t, e, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "hunter2", target)
		assert.NotContains(t, rec.Body.String(), "secret.db", target)
	}
}

func TestRequestID(t *testing.T) {
	withdata(t, fixtures)
	rec := get(t, NewEchoServer(), "/home")
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}
