package codec_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ledgerbin/ledgerbin/codec"
	"github.com/ledgerbin/ledgerbin/errs"
	"github.com/ledgerbin/ledgerbin/ledger"
	"github.com/stretchr/testify/require"
)

func TestReader_Test_MagicMismatch(t *testing.T) {
	r, err := codec.NewReader()
	require.NoError(t, err)

	garbage := bytes.NewReader(make([]byte, 32))
	require.False(t, r.Test(garbage))

	pos, err := garbage.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Zero(t, pos, "Test must rewind the stream on mismatch")
}

func TestReader_Parse_VersionMismatch(t *testing.T) {
	j := sampleJournal(t)

	w, err := codec.NewWriter()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, j))

	corrupted := buf.Bytes()
	corrupted[4] ^= 0xFF // flip a byte inside the format-version word

	r, err := codec.NewReader()
	require.NoError(t, err)

	_, err = r.Parse(bytes.NewReader(corrupted), "", nil)
	require.ErrorIs(t, err, errs.ErrVersionMismatch)
}

func TestReader_Parse_Staleness(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.journal")
	require.NoError(t, os.WriteFile(path, []byte("; empty"), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	j := ledger.NewJournal()
	j.AddSource(&ledger.SourceFile{Path: path, ModTime: info.ModTime()})

	w, err := codec.NewWriter()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, j))

	r, err := codec.NewReader()
	require.NoError(t, err)
	n, err := r.Parse(bytes.NewReader(buf.Bytes()), "", nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	later := info.ModTime().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	r2, err := codec.NewReader()
	require.NoError(t, err)
	_, err = r2.Parse(bytes.NewReader(buf.Bytes()), "", nil)
	require.ErrorIs(t, err, errs.ErrStale)
}

func TestReader_Parse_SourcePathMismatch(t *testing.T) {
	j := sampleJournal(t)

	w, err := codec.NewWriter()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, j))

	r, err := codec.NewReader()
	require.NoError(t, err)

	n, err := r.Parse(bytes.NewReader(buf.Bytes()), "other.journal", nil)
	require.NoError(t, err)
	require.Equal(t, 0, n, "a non-matching requested source path is inapplicable, not an error")
}
