package csv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/csvio/pkg/config"
	"github.com/ajitpratap0/csvio/pkg/errors"
	"github.com/ajitpratap0/csvio/pkg/models"
	"github.com/ajitpratap0/csvio/pkg/testutil"
)

func tableOf(rows ...[]string) *models.Table {
	t := models.NewTable(len(rows))
	for _, row := range rows {
		t.Append(models.NewRecord(row...))
	}
	return t
}

func TestNewParserDefaults(t *testing.T) {
	p := NewParser()

	assert.Equal(t, ",", p.FieldDelimiter())
	assert.Equal(t, "\r\n", p.RecordDelimiter())
	assert.Empty(t, p.Filename())
}

func TestNewParserWithDelimitersRejectsBadPairs(t *testing.T) {
	_, err := NewParserWithDelimiters(";", ";")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	_, err = NewParserWithDelimiters("", "\n")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *models.Table
	}{
		{"empty input yields empty table", "", tableOf()},
		{"single record", "a,b", tableOf([]string{"a", "b"})},
		{"two records", "a,b\r\nc,d", tableOf([]string{"a", "b"}, []string{"c", "d"})},
		{"trailing delimiter", "a,b\r\nc,d\r\n", tableOf([]string{"a", "b"}, []string{"c", "d"})},
		{"lone delimiter is one empty record", "\r\n", tableOf([]string{""})},
		{"ragged rows tokenize without error", "1,2\r\n3\r\n", tableOf([]string{"1", "2"}, []string{"3"})},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.DecodeString(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got.Records())
		})
	}
}

func TestEncodePolicy(t *testing.T) {
	// Every record, including the last, is terminated with the record
	// delimiter.
	p, err := NewParserWithDelimiters(",", "\n")
	require.NoError(t, err)

	table := tableOf([]string{"a", "b"}, []string{"c", "d"})
	assert.Equal(t, "a,b\nc,d\n", p.Encode(table))
}

func TestEncodeEmptyTable(t *testing.T) {
	p := NewParser()
	assert.Equal(t, "", p.Encode(models.NewTable()))
}

func TestRoundTrip(t *testing.T) {
	tables := []*models.Table{
		tableOf(),
		tableOf([]string{""}),
		tableOf([]string{"a", "b"}, []string{"c", "d"}),
		tableOf([]string{"1", "2"}, []string{"3"}),
		tableOf([]string{" padded ", ""}, []string{"", ""}),
	}

	parsers := []*Parser{NewParser()}
	multi, err := NewParserWithDelimiters("||", "<EOL>")
	require.NoError(t, err)
	parsers = append(parsers, multi)

	for _, p := range parsers {
		for i, table := range tables {
			got, err := p.DecodeString(p.Encode(table))
			require.NoError(t, err)
			assert.True(t, table.Equal(got),
				"round trip failed for table %d with delimiters %q/%q: got %v",
				i, p.FieldDelimiter(), p.RecordDelimiter(), got.Records())
		}
	}
}

func TestReadEntireFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "in.csv", "a,b\r\nc,d\r\n")

	p := NewParser()
	p.SetLogger(testutil.TestLogger(t))

	table, err := p.ReadEntireFile(path)
	require.NoError(t, err)
	assert.True(t, tableOf([]string{"a", "b"}, []string{"c", "d"}).Equal(table))
}

func TestReadEntireFileUsesStoredFilename(t *testing.T) {
	path := testutil.WriteTempFile(t, "in.csv", "x\r\n")

	p := NewParser()
	p.SetFilename(path)

	table, err := p.ReadEntireFile()
	require.NoError(t, err)
	assert.Equal(t, 1, table.NumRecords())
}

func TestReadEntireFileMissing(t *testing.T) {
	p := NewParser()

	table, err := p.ReadEntireFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFileOpen))
}

func TestReadEntireFileNoFilename(t *testing.T) {
	p := NewParser()

	_, err := p.ReadEntireFile()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestCreateCsvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	p := NewParser()
	p.SetLogger(testutil.TestLogger(t))

	table := tableOf([]string{"a", "b"}, []string{"c", "d"})
	require.NoError(t, p.CreateCsvFile(table, path))

	assert.Equal(t, "a,b\r\nc,d\r\n", testutil.ReadFile(t, path))
}

func TestCreateCsvFileUsesStoredFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	p := NewParser()
	p.SetFilename(path)

	require.NoError(t, p.CreateCsvFile(tableOf([]string{"x"})))
	assert.Equal(t, "x\r\n", testutil.ReadFile(t, path))
}

func TestCreateCsvFileUnwritableDestination(t *testing.T) {
	p := NewParser()

	err := p.CreateCsvFile(tableOf([]string{"x"}),
		filepath.Join(t.TempDir(), "no-such-dir", "out.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFileWrite))
}

func TestCreateCsvFileNoFilename(t *testing.T) {
	p := NewParser()

	err := p.CreateCsvFile(tableOf([]string{"x"}))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round.csv")

	p, err := NewParserWithConfig(&config.Config{
		FieldDelimiter:  "\t",
		RecordDelimiter: "\n",
	})
	require.NoError(t, err)

	table := tableOf([]string{"1", "2.5"}, []string{"3", "4"})
	require.NoError(t, p.CreateCsvFile(table, path))

	got, err := p.ReadEntireFile(path)
	require.NoError(t, err)
	assert.True(t, table.Equal(got))
}

func TestParserConfigIsIsolated(t *testing.T) {
	cfg := config.New()
	p, err := NewParserWithConfig(cfg)
	require.NoError(t, err)

	// Mutating the caller's config after construction must not
	// reconfigure the parser.
	cfg.FieldDelimiter = ";"
	assert.Equal(t, ",", p.FieldDelimiter())
}
