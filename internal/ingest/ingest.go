package ingest

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nxadm/tail"
)

type SourceKind string

const (
	SourceStdin SourceKind = "stdin"
	SourceFile  SourceKind = "file"
)

type Options struct {
	Source      SourceKind
	Path        string
	Follow      bool
	ScanBufSize int // per-line max (bytes)
	// FlushAfter closes a pending snippet in follow mode when no new line
	// arrived for this long. Zero picks a default.
	FlushAfter time.Duration
}

// Snippet is one blank-line-separated block of journal text, the same unit
// a user would paste interactively.
type Snippet struct {
	Text   string
	Source string
	When   time.Time
}

// Read streams snippets from the configured source. Lines are accumulated
// into a snippet until a blank line ends it; in follow mode a quiet period
// flushes the pending snippet too, since tailed journals rarely end with a
// trailing separator.
func Read(ctx context.Context, opt Options) (<-chan Snippet, <-chan error) {
	out := make(chan Snippet, 256)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		switch opt.Source {
		case SourceStdin:
			readFromReader(ctx, os.Stdin, "stdin", opt.ScanBufSize, out, errs)
		case SourceFile:
			if opt.Follow {
				readFromTail(ctx, opt, out, errs)
			} else {
				f, err := os.Open(opt.Path)
				if err != nil {
					errs <- err
					return
				}
				defer f.Close()
				readFromReader(ctx, f, opt.Path, opt.ScanBufSize, out, errs)
			}
		default:
			errs <- errors.New("unknown source kind")
		}
	}()

	return out, errs
}

// accum batches lines into snippets split on blank lines.
type accum struct {
	lines  []string
	source string
}

func (a *accum) add(line string) bool {
	if strings.TrimSpace(line) == "" {
		return len(a.lines) > 0
	}
	a.lines = append(a.lines, line)
	return false
}

func (a *accum) flush(out chan<- Snippet) {
	if len(a.lines) == 0 {
		return
	}
	out <- Snippet{Text: strings.Join(a.lines, "\n"), Source: a.source, When: time.Now()}
	a.lines = nil
}

func readFromReader(ctx context.Context, r io.Reader, src string, maxBuf int, out chan<- Snippet, errs chan<- error) {
	if maxBuf <= 0 {
		maxBuf = 1024 * 1024
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBuf)
	a := accum{source: src}
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if a.add(scanner.Text()) {
			a.flush(out)
		}
	}
	a.flush(out)
	if err := scanner.Err(); err != nil {
		errs <- err
	}
}

func readFromTail(ctx context.Context, opt Options, out chan<- Snippet, errs chan<- error) {
	flushAfter := opt.FlushAfter
	if flushAfter <= 0 {
		flushAfter = 500 * time.Millisecond
	}
	t, err := tail.TailFile(opt.Path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
		Poll:      true,
	})
	if err != nil {
		errs <- err
		return
	}
	defer t.Cleanup()

	a := accum{source: opt.Path}
	timer := time.NewTimer(flushAfter)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			a.flush(out)
			return
		case <-timer.C:
			a.flush(out)
			timer.Reset(flushAfter)
		case l, ok := <-t.Lines:
			if !ok {
				a.flush(out)
				return
			}
			if l.Err != nil {
				errs <- l.Err
				continue
			}
			if a.add(l.Text) {
				a.flush(out)
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(flushAfter)
		}
	}
}
