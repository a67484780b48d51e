package prm

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
)

// zstd decoders have a Close method that doesn't return an error,
// so they need a wrapper to be io.ReadClosers.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// prepSource opens fname and returns a reader that decompresses it first if needed,
// depending on the file extension: .gz (gzip), .zst (zstd). Anything else
// is read as it is.
func prepSource(fname string) (io.Reader, func() error, error) {
	fhandle, err := os.Open(fname)
	if err != nil {
		return nil, nil, &Error{UnableToOpen + ": " + err.Error(), fname, []string{"os.Open", "prepSource"}, true}
	}
	var dec io.ReadCloser
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		dec, err = gzip.NewReader(bufio.NewReader(fhandle))
	case ".zst":
		var z *zstd.Decoder
		z, err = zstd.NewReader(bufio.NewReader(fhandle))
		if err == nil {
			dec = zstdCloser{z}
		}
	default:
		return fhandle, fhandle.Close, nil
	}
	if err != nil {
		fhandle.Close()
		return nil, nil, &Error{UnknownCompressor + ": " + err.Error(), fname, []string{"prepSource"}, true}
	}
	closer := func() error {
		return multierr.Combine(dec.Close(), fhandle.Close())
	}
	return dec, closer, nil
}

// ReadFile opens and reads the prm file fname, which can be compressed
// with gzip or zstd (recognized by the .gz and .zst extensions).
func ReadFile(fname string) (F *File, err error) {
	r, closer, err := prepSource(fname)
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(closer))
	F, err = Read(r, fname)
	if err != nil {
		return nil, err
	}
	return F, nil
}
