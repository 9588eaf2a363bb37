package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathmedha/medha/internal/problemgen"
	"github.com/mathmedha/medha/internal/quiz"
	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/store"
)

type fixedGenerator struct{}

func (fixedGenerator) Next() problemgen.Question { return problemgen.NewQuestion(7, 6) }

func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{
		"MEDHA_DURATION", "MEDHA_MIN_FACTOR", "MEDHA_MAX_FACTOR", "MEDHA_TABLE",
		"MEDHA_MUTED", "MEDHA_KEYPAD", "MEDHA_DB", "MEDHA_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDHA_DURATION", "60")
	t.Setenv("MEDHA_MAX_FACTOR", "9")

	require.NoError(t, rootCmd.ParseFlags([]string{"--duration", "45s", "--table", "7"}))
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Duration)
	assert.Equal(t, 7, cfg.Gen.Table)
	assert.Equal(t, 9, cfg.Gen.MaxFactor)
}

func TestVerdict(t *testing.T) {
	right := quiz.Outcome{
		Question: problemgen.NewQuestion(7, 6),
		Correct:  true,
		Events:   []quiz.Event{{Kind: quiz.StarGranted, Index: 1}, {Kind: quiz.PlanetRevealed, Index: 0}},
	}
	assert.Equal(t, "  ✓ correct!  ★ golden star!  ◉ Mercury!", verdict(right))

	wrong := quiz.Outcome{Question: problemgen.NewQuestion(7, 6), Answer: "40"}
	assert.Equal(t, "  ✗ 7 × 6 = 42", verdict(wrong))
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, quiz.Summary{TotalAttempted: 4, TotalCorrect: 3, BestStreak: 3, Stars: 0}, []rewards.Award{
		{Type: rewards.RewardSession, Rarity: rewards.RarityCommon, Name: "Journey", Reason: "Journey complete (75% accuracy)"},
	})

	out := buf.String()
	assert.Contains(t, out, "answered 4, correct 3 (75%)")
	assert.Contains(t, out, "Journey complete (75% accuracy)")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, []store.SessionSummaryRecord{
		{Timestamp: time.Now(), Attempted: 10, Correct: 8, BestStreak: 6, Stars: 1, Badges: 1},
	}, map[string]int{"star": 1, "badge": 1}, 2)

	out := buf.String()
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Lifetime rewards: 2")
	assert.Contains(t, out, "Golden Star")
}

func TestPrintHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil, map[string]int{}, 0)
	assert.Contains(t, buf.String(), "No journeys yet.")
}

func TestDrill(t *testing.T) {
	var result *quiz.Summary
	sess := quiz.New(quiz.Options{
		Duration:  2 * time.Second,
		Generator: fixedGenerator{},
		OnResults: func(s quiz.Summary) { result = &s },
	})

	var out bytes.Buffer
	err := drill(context.Background(), sess, strings.NewReader("42\n\n40\n"), &out)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 2, result.TotalAttempted)
	assert.Equal(t, 1, result.TotalCorrect)
	assert.Contains(t, out.String(), "✓ correct!")
	assert.Contains(t, out.String(), "✗ 7 × 6 = 42")
}

func TestDrillRepromptsUnjudgedLines(t *testing.T) {
	var result *quiz.Summary
	sess := quiz.New(quiz.Options{
		Duration:  2 * time.Second,
		Generator: fixedGenerator{},
		OnResults: func(s quiz.Summary) { result = &s },
	})

	var out bytes.Buffer
	err := drill(context.Background(), sess, strings.NewReader("abc\n\n42\n"), &out)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.TotalAttempted)
	// One prompt per line read: two reprompts and one after the verdict.
	assert.Equal(t, 3, strings.Count(out.String(), "] 7 × 6 = "))
}

func TestDrillCancelled(t *testing.T) {
	var called bool
	sess := quiz.New(quiz.Options{
		Duration:  30 * time.Second,
		Generator: fixedGenerator{},
		OnResults: func(quiz.Summary) { called = true },
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := drill(ctx, sess, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.True(t, sess.TornDown())
}

func TestResetRequiresConfirmation(t *testing.T) {
	clearEnv(t)
	err := resetCmd.RunE(resetCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestOpenLogWithoutHomeDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "")

	closer := openLog(slog.LevelInfo)
	assert.Nil(t, closer)

	slog.Info("should go nowhere")
	assert.Empty(t, buf.String())
}

func TestOpenLogWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	closer := openLog(slog.LevelInfo)
	require.NotNil(t, closer)
	slog.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "medha", "medha.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
