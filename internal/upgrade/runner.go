package upgrade

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Event conveys a chunk of subprocess output or its exit.
type Event struct {
	Output string
	Done   bool
	Err    error
}

// Runner owns one upgrade subprocess and streams its combined output as
// events. Read errors end the stream; they are never fatal to the caller.
type Runner struct {
	packages []string

	ctx    context.Context
	cancel context.CancelFunc

	cmd    *exec.Cmd
	events chan Event
	wg     sync.WaitGroup
}

// Start spawns `<bin> -S --needed --noconfirm <packages...>`. The caller
// already confirmed the operation, so pacman runs non-interactively.
func Start(bin string, packages []string) (*Runner, error) {
	if len(packages) == 0 {
		return nil, fmt.Errorf("no packages selected")
	}
	r, err := StartCommand(bin, commandArgs(packages))
	if err != nil {
		return nil, err
	}
	r.packages = append([]string(nil), packages...)
	return r, nil
}

// commandArgs builds pacman's sync argument vector. --needed skips
// packages already at the target version; --noconfirm suppresses prompts
// the UI cannot answer.
func commandArgs(packages []string) []string {
	return append([]string{"-S", "--needed", "--noconfirm"}, packages...)
}

// StartCommand spawns an arbitrary command with stdout and stderr merged
// into one stream. Split out from Start so tests can substitute a harmless
// binary.
func StartCommand(name string, args []string) (*Runner, error) {
	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("pipe %s output: %w", name, err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	r := &Runner{
		ctx:    ctx,
		cancel: cancel,
		cmd:    cmd,
		events: make(chan Event, 16),
	}
	r.wg.Add(1)
	go r.read(stdout)
	go func() {
		r.wg.Wait()
		close(r.events)
	}()
	return r, nil
}

// Events returns the stream of output and exit events. The channel closes
// once the subprocess has been reaped.
func (r *Runner) Events() <-chan Event {
	return r.events
}

// Packages returns the package names this runner was started for.
func (r *Runner) Packages() []string {
	return append([]string(nil), r.packages...)
}

// Stop terminates the subprocess. The reader goroutine drains the pipe and
// reaps the child, so an abandoned sync never leaves a zombie behind.
func (r *Runner) Stop() {
	r.cancel()
}

// Wait blocks until the reader goroutine has exited and the events channel
// is closed. Call after Stop when a clean drain is required (e.g. in tests).
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) read(out io.Reader) {
	defer r.wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := out.Read(buf)
		if n > 0 {
			if !r.emit(Event{Output: string(buf[:n])}) {
				break
			}
		}
		if err != nil {
			break
		}
	}
	err := r.cmd.Wait()
	r.emit(Event{Done: true, Err: err})
}

func (r *Runner) emit(evt Event) bool {
	select {
	case <-r.ctx.Done():
		return false
	case r.events <- evt:
		return true
	}
}
