// Package term puts the controlling terminal into raw input mode and
// guarantees it is put back.
package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned by Acquire when the file is not a terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// Guard holds the terminal settings that were active before raw mode.
type Guard struct {
	fd   int
	prev *xterm.State
	once sync.Once
	err  error
}

// Acquire switches f into raw mode: keys arrive one at a time, unechoed.
func Acquire(f *os.File) (*Guard, error) {
	fd := int(f.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}
	prev, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enable raw mode: %w", err)
	}
	return &Guard{fd: fd, prev: prev}, nil
}

// Restore puts back the saved settings. Only the first call has an effect.
func (g *Guard) Restore() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		g.err = xterm.Restore(g.fd, g.prev)
	})
	return g.err
}

// RestoreOnSignal restores the terminal and exits with status 128+signo
// when one of sigs arrives. The returned func stops watching.
func (g *Guard) RestoreOnSignal(sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGTERM, syscall.SIGHUP, os.Interrupt}
	}
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, sigs...)
	go func() {
		select {
		case sig := <-ch:
			_ = g.Restore()
			code := 1
			if s, ok := sig.(syscall.Signal); ok {
				code = 128 + int(s)
			}
			os.Exit(code)
		case <-done:
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}
