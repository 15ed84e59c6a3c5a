package streams

import (
	"context"
	"fmt"
	"io"

	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"

	"github.com/klauspost/compress/gzip"
)

// ObjectOpener opens a locally available compressed log object.
type ObjectOpener interface {
	Open(ctx context.Context, key models.LogObjectKey) (io.ReadCloser, error)
}

// decompressedStream reads the gzip objects of keys back to back as one text
// stream. Only the current object is open at any time, and a newline is
// inserted between objects whose content does not end with one.
type decompressedStream struct {
	ctx     context.Context
	opener  ObjectOpener
	keys    []models.LogObjectKey
	tracker *progress.Tracker

	next           int
	raw            io.ReadCloser
	gz             *gzip.Reader
	lastByte       byte
	pendingNewline bool
	err            error
}

// NewDecompressedStream returns the decompressed concatenation of keys, opened
// lazily in order. tracker, when not nil, advances once per finished object.
func NewDecompressedStream(ctx context.Context, opener ObjectOpener, keys []models.LogObjectKey, tracker *progress.Tracker) io.ReadCloser {
	return &decompressedStream{ctx: ctx, opener: opener, keys: keys, tracker: tracker, lastByte: '\n'}
}

func (s *decompressedStream) Read(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	for {
		if s.pendingNewline {
			s.pendingNewline = false
			s.lastByte = '\n'
			p[0] = '\n'
			return 1, nil
		}

		if s.gz == nil {
			if s.next >= len(s.keys) {
				s.err = io.EOF
				return 0, io.EOF
			}
			if err := s.openNext(); err != nil {
				s.err = err
				return 0, err
			}
		}

		n, err := s.gz.Read(p)
		if n > 0 {
			s.lastByte = p[n-1]
		}
		if err == io.EOF {
			if closeErr := s.closeCurrent(); closeErr != nil {
				s.err = closeErr
				return n, closeErr
			}
			s.pendingNewline = s.lastByte != '\n'
			if n > 0 {
				return n, nil
			}
			continue
		}
		if err != nil {
			s.err = fmt.Errorf("failed to decompress %s: %w", s.keys[s.next-1], err)
			return n, s.err
		}
		return n, nil
	}
}

func (s *decompressedStream) openNext() error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	key := s.keys[s.next]
	s.next++

	raw, err := s.opener.Open(s.ctx, key)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", key, err)
	}
	gz, err := gzip.NewReader(raw)
	if err != nil {
		_ = raw.Close()
		metricObjectsDecompressedTotal.WithLabelValues(outcomeFailed).Inc()
		return fmt.Errorf("failed to decompress %s: %w", key, err)
	}

	s.raw, s.gz = raw, gz
	return nil
}

func (s *decompressedStream) closeCurrent() error {
	gzErr := s.gz.Close()
	rawErr := s.raw.Close()
	s.gz, s.raw = nil, nil

	metricObjectsDecompressedTotal.WithLabelValues(outcomeDecompressed).Inc()
	if s.tracker != nil {
		s.tracker.Add(1)
	}

	if gzErr != nil {
		return gzErr
	}
	return rawErr
}

// Close releases the object currently open, if any.
func (s *decompressedStream) Close() error {
	if s.err == nil {
		s.err = io.ErrClosedPipe
	}
	if s.gz == nil {
		return nil
	}
	gzErr := s.gz.Close()
	rawErr := s.raw.Close()
	s.gz, s.raw = nil, nil
	if gzErr != nil {
		return gzErr
	}
	return rawErr
}
