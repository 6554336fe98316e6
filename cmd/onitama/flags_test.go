package main

import (
	"testing"

	"github.com/lgbarn/onitama-go/internal/config"
	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/testutil"
)

// withFlags sets flag variables for one test and restores them afterwards.
func withFlags(t *testing.T, set func()) {
	t.Helper()
	saved := []any{*dealCards, *random, *seed, *showCards, *listPlays, *perftDepth, *workers, *asciiBoard, *jsonOutput, *quiet, *verbose}
	t.Cleanup(func() {
		*dealCards = saved[0].(string)
		*random = saved[1].(bool)
		*seed = saved[2].(int64)
		*showCards = saved[3].(bool)
		*listPlays = saved[4].(bool)
		*perftDepth = saved[5].(int)
		*workers = saved[6].(int)
		*asciiBoard = saved[7].(bool)
		*jsonOutput = saved[8].(bool)
		*quiet = saved[9].(bool)
		*verbose = saved[10].(bool)
	})
	set()
}

func TestApplyFlagsDeal(t *testing.T) {
	withFlags(t, func() { *dealCards = "tiger, crab,monkey crane,dragon" })

	cfg := config.NewConfig()
	cfg.Deal.Random = true
	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{"deal": true}))

	want, err := deal.FromNames("Tiger", "Crab", "Monkey", "Crane", "Dragon")
	testutil.AssertNoError(t, err)
	red, blue, spare := cfg.Deal.Fixed()
	testutil.AssertEqual(t, deal.Deal{Red: red, Blue: blue, Spare: spare}, want)
	if cfg.Deal.Random {
		t.Error("-deal should turn off random dealing")
	}
}

func TestApplyFlagsBadDeal(t *testing.T) {
	withFlags(t, func() { *dealCards = "Tiger,Crab,Wolf,Crane,Dragon" })
	if err := applyFlags(config.NewConfig(), map[string]bool{"deal": true}); err == nil {
		t.Error("applyFlags accepted an unknown card")
	}
}

func TestApplyFlagsOnlySetFlagsOverride(t *testing.T) {
	withFlags(t, func() {
		*perftDepth = 4
		*workers = 0
		*asciiBoard = false
	})

	cfg := config.NewConfig()
	cfg.Perft.Workers = 6 // from the environment
	cfg.ASCII = true

	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{"perft": true}))
	testutil.AssertEqual(t, cfg.Perft.Depth, 4)
	testutil.AssertEqual(t, cfg.Perft.Workers, 6)
	testutil.AssertEqual(t, cfg.ASCII, true)
	testutil.AssertEqual(t, selectMode(cfg), modePerft)
}

func TestApplyFlagsSeedImpliesRandom(t *testing.T) {
	withFlags(t, func() { *seed = 77 })

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{"seed": true}))
	if !cfg.Deal.Random || cfg.Deal.Seed != 77 {
		t.Errorf("Deal = %+v, want random with seed 77", *cfg.Deal)
	}
}

func TestApplyFlagsVerbosity(t *testing.T) {
	withFlags(t, func() { *verbose = true })
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{"v": true}))
	testutil.AssertEqual(t, cfg.Verbosity, config.Commentary)

	*quiet = true
	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{"v": true, "s": true}))
	testutil.AssertEqual(t, cfg.Verbosity, config.Silent)
}

func TestSelectMode(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertEqual(t, selectMode(cfg), modeMatch)

	withFlags(t, func() { *listPlays = true })
	testutil.AssertEqual(t, selectMode(cfg), modeList)

	*showCards = true
	testutil.AssertEqual(t, selectMode(cfg), modeCards)
}

func TestSplitNames(t *testing.T) {
	testutil.AssertEqual(t, splitNames("a,b c,,d"), []string{"a", "b", "c", "d"})
	testutil.AssertEqual(t, len(splitNames("")), 0)
}
