package speech

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestNop(t *testing.T) {
	var s Speaker = Nop{}
	if s.Available() {
		t.Error("Nop should never be available")
	}
	if err := s.Speak("hello"); err != nil {
		t.Errorf("Speak: %v", err)
	}
	s.Cancel()
}

func TestUnavailableCommandSpeaker(t *testing.T) {
	s := NewCommandSpeakerWith("", nil)
	if s.Available() {
		t.Fatal("expected unavailable speaker")
	}
	if err := s.Speak("What is 2 times 3?"); err != nil {
		t.Errorf("Speak on unavailable speaker: %v", err)
	}
	if s.Speaking() {
		t.Error("unavailable speaker must not be speaking")
	}
	s.Cancel()
}

func sleepSpeaker(t *testing.T) *CommandSpeaker {
	t.Helper()
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not on PATH")
	}
	return NewCommandSpeakerWith(path, func(string) []string { return []string{"5"} })
}

func TestSpeakCancelsPrevious(t *testing.T) {
	s := sleepSpeaker(t)
	defer s.Cancel()

	if err := s.Speak("first"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	s.mu.Lock()
	first := s.cmd
	s.mu.Unlock()

	if err := s.Speak("second"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	s.mu.Lock()
	second := s.cmd
	s.mu.Unlock()

	if first == second {
		t.Fatal("expected a new process for the second utterance")
	}

	// The first process was killed; its Wait returns promptly.
	deadline := time.Now().Add(2 * time.Second)
	for first.Process.Signal(syscall.Signal(0)) == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if first.Process.Signal(syscall.Signal(0)) == nil {
		t.Error("first utterance still running after second Speak")
	}
	if !s.Speaking() {
		t.Error("expected second utterance in flight")
	}
}

func TestCancel(t *testing.T) {
	s := sleepSpeaker(t)

	if err := s.Speak("hello"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if !s.Speaking() {
		t.Fatal("expected utterance in flight")
	}
	s.Cancel()
	if s.Speaking() {
		t.Error("expected no utterance after Cancel")
	}

	// Cancel with nothing in flight is a no-op.
	s.Cancel()
}

func TestEngineArgs(t *testing.T) {
	for _, e := range engines {
		args := e.args("hi")
		if len(args) == 0 || args[len(args)-1] != "hi" {
			t.Errorf("%s args = %v, want text last", e.name, args)
		}
	}
}

func TestCancelRunsEngineStop(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not on PATH")
	}
	marker := filepath.Join(t.TempDir(), "stopped")
	s := NewCommandSpeakerWith(sh, func(string) []string { return []string{"-c", "sleep 5"} })
	s.stop = []string{"-c", "echo stop >> " + marker}

	if err := s.Speak("first"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if err := s.Speak("second"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	s.Cancel()

	// Nothing in flight: the engine is left alone.
	s.Cancel()

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if n := strings.Count(string(data), "stop"); n != 2 {
		t.Errorf("stop ran %d times, want 2", n)
	}
}

func TestSpdSayStopsQueuedSpeech(t *testing.T) {
	for _, e := range engines {
		if e.name == "spd-say" && len(e.stop) == 0 {
			t.Error("spd-say needs a stop command to cancel queued speech")
		}
	}
}
