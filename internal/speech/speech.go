// Package speech reads questions aloud. Speech is optional: when no
// synthesizer is installed the speaker reports itself unavailable and every
// call is a no-op.
package speech

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Speaker is the audio feedback collaborator of a quiz session.
type Speaker interface {
	// Available reports whether speech can be produced on this machine.
	Available() bool

	// Speak cancels any utterance in flight and starts saying text.
	// It does not wait for the utterance to finish.
	Speak(text string) error

	// Cancel stops the current utterance, if any.
	Cancel()
}

// Nop is a Speaker that is never available.
type Nop struct{}

func (Nop) Available() bool { return false }

func (Nop) Speak(string) error { return nil }

func (Nop) Cancel() {}

// engine describes a command-line synthesizer.
type engine struct {
	name string
	args func(text string) []string
	// stop, if set, are the arguments that silence speech the engine has
	// already queued elsewhere (speech-dispatcher outlives its client).
	stop []string
}

// engines are tried in order.
var engines = []engine{
	{name: "espeak-ng", args: func(t string) []string { return []string{"-s", "150", t} }},
	{name: "espeak", args: func(t string) []string { return []string{"-s", "150", t} }},
	{name: "say", args: func(t string) []string { return []string{t} }},
	{name: "spd-say", args: func(t string) []string { return []string{"--wait", t} }, stop: []string{"-C"}},
}

// CommandSpeaker speaks by running a synthesizer as a child process.
type CommandSpeaker struct {
	path string
	args func(text string) []string
	stop []string

	mu  sync.Mutex
	cmd *exec.Cmd
}

var _ Speaker = (*CommandSpeaker)(nil)

// NewCommandSpeaker looks up the first known synthesizer on PATH. The
// returned speaker is unavailable when none is installed.
func NewCommandSpeaker() *CommandSpeaker {
	candidates := engines
	if runtime.GOOS == "darwin" {
		candidates = []engine{engines[2]}
	}
	for _, e := range candidates {
		if p, err := exec.LookPath(e.name); err == nil {
			return &CommandSpeaker{path: p, args: e.args, stop: e.stop}
		}
	}
	return &CommandSpeaker{}
}

// NewCommandSpeakerWith builds a speaker around an explicit program.
func NewCommandSpeakerWith(path string, args func(text string) []string) *CommandSpeaker {
	return &CommandSpeaker{path: path, args: args}
}

// Engine returns the program used for speech, or "" when unavailable.
func (c *CommandSpeaker) Engine() string {
	return c.path
}

func (c *CommandSpeaker) Available() bool {
	return c.path != ""
}

func (c *CommandSpeaker) Speak(text string) error {
	if !c.Available() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()

	cmd := exec.Command(c.path, c.args(text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.path, err)
	}
	c.cmd = cmd

	go func() {
		_ = cmd.Wait()
		c.mu.Lock()
		if c.cmd == cmd {
			c.cmd = nil
		}
		c.mu.Unlock()
	}()
	return nil
}

func (c *CommandSpeaker) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Speaking reports whether an utterance is in flight.
func (c *CommandSpeaker) Speaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cmd != nil
}

func (c *CommandSpeaker) cancelLocked() {
	if c.cmd == nil {
		return
	}
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	c.cmd = nil
	if c.stop != nil {
		_ = exec.Command(c.path, c.stop...).Run()
	}
}
