//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tbl

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/BERTopicBoard/internal/str"
	_ "modernc.org/sqlite"
)

const (
	BOM        = "\ufeff"
	UNNAMED    = "Unnamed: %d"
	SQLITEDRVR = "sqlite"
	SELECTTMPL = `SELECT * FROM "%s"`
)

var ErrNotFound = errors.New("table not found")

// Source - somewhere the upstream artifacts can be read from; every call reads afresh
type Source interface {
	Load(fn string) (str.Table, error)
	String() string
}

// NewSource - a SQLite source if one is configured, otherwise the csv directory
func NewSource(cfg *str.CurrentConfiguration) Source {
	if cfg.SQLiteDB != "" {
		return SQLiteSource{Path: cfg.SQLiteDB}
	}
	return CSVDir{Dir: cfg.DataDir}
}

// Stem - "document_info.csv" -> "document_info"
func Stem(fn string) string {
	return strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
}

//
// CSV
//

type CSVDir struct {
	Dir string
}

func (d CSVDir) String() string {
	return "csv:" + d.Dir
}

// Load - read the whole of Dir/fn
func (d CSVDir) Load(fn string) (str.Table, error) {
	p := filepath.Join(d.Dir, fn)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return str.Table{}, fmt.Errorf("%s: %w", p, ErrNotFound)
		}
		return str.Table{}, err
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return str.Table{}, fmt.Errorf("%s: %w", p, err)
	}
	t.Name = Stem(fn)
	return t, nil
}

// ReadCSV - the first record is the header; an empty input is an error
func ReadCSV(r io.Reader) (str.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err == io.EOF {
		return str.Table{}, errors.New("no header row")
	}
	if err != nil {
		return str.Table{}, err
	}

	t := str.Table{Header: fixheader(hdr)}
	for {
		rec, e := cr.Read()
		if e == io.EOF {
			break
		}
		if e != nil {
			return str.Table{}, e
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// fixheader - strip a BOM and name blank headers the way pandas does (an unnamed index column is common)
func fixheader(hdr []string) []string {
	fixed := make([]string, len(hdr))
	for i, h := range hdr {
		if i == 0 {
			h = strings.TrimPrefix(h, BOM)
		}
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf(UNNAMED, i)
		}
		fixed[i] = h
	}
	return fixed
}

//
// SQLITE
//

// SQLiteSource - tables named after the csv stems inside a single database file
type SQLiteSource struct {
	Path string
}

func (s SQLiteSource) String() string {
	return "sqlite:" + s.Path
}

// Load - open, read the table named Stem(fn), close
func (s SQLiteSource) Load(fn string) (str.Table, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return str.Table{}, fmt.Errorf("%s: %w", s.Path, ErrNotFound)
	}

	db, err := sql.Open(SQLITEDRVR, s.Path)
	if err != nil {
		return str.Table{}, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer db.Close()

	name := Stem(fn)

	var found string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return str.Table{}, fmt.Errorf("%s: %s: %w", s.Path, name, ErrNotFound)
	}
	if err != nil {
		return str.Table{}, err
	}

	rows, err := db.Query(fmt.Sprintf(SELECTTMPL, strings.ReplaceAll(name, `"`, `""`)))
	if err != nil {
		return str.Table{}, fmt.Errorf("%s: %s: %w", s.Path, name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return str.Table{}, err
	}

	t := str.Table{Name: name, Header: fixheader(cols)}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return str.Table{}, err
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = celltostring(v)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, rows.Err()
}

func celltostring(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
