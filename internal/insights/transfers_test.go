package insights

import (
	"errors"
	"testing"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

func TestSuggestTransfer_WeakestLinkUpgraded(t *testing.T) {
	ctx := testContext()
	// Squad holds Saka and Cheapo; Palmer (same position, in budget with
	// the bank) is the obvious replacement for Cheapo.
	picks := squadPicks(
		fpl.Pick{Element: 101, Multiplier: 1},
		fpl.Pick{Element: 103, Multiplier: 1},
	)
	entry := &fpl.Entry{LastDeadlineBank: 70} // £7.0m spare

	got, err := SuggestTransfer(ctx, picks, entry)
	if err != nil {
		t.Fatal(err)
	}

	if got.Out.PlayerID != 103 {
		t.Errorf("Out = %+v, want Cheapo (weakest desirability)", got.Out)
	}
	if got.In.PlayerID != 102 {
		t.Errorf("In = %+v, want Palmer", got.In)
	}
	if !got.Upgrade {
		t.Error("Upgrade = false, want true")
	}
	if got.Bank != 7.0 {
		t.Errorf("Bank = %v, want 7.0", got.Bank)
	}
}

func TestSuggestTransfer_BudgetRespected(t *testing.T) {
	ctx := testContext()
	picks := squadPicks(
		fpl.Pick{Element: 101, Multiplier: 1},
		fpl.Pick{Element: 103, Multiplier: 1},
	)
	entry := &fpl.Entry{LastDeadlineBank: 0} // Cheapo at 4.5 can't fund Palmer at 10.5

	_, err := SuggestTransfer(ctx, picks, entry)
	if !errors.Is(err, ErrNoReplacements) {
		t.Fatalf("err = %v, want ErrNoReplacements", err)
	}
}

func TestSuggestTransfer_EmptySquad(t *testing.T) {
	ctx := testContext()

	if _, err := SuggestTransfer(ctx, squadPicks(), &fpl.Entry{}); err == nil {
		t.Fatal("empty squad should error")
	}
}

func TestSuggestTransfer_SquadMembersExcluded(t *testing.T) {
	ctx := testContext()
	// All midfielders are already owned; no replacement pool remains.
	picks := squadPicks(
		fpl.Pick{Element: 101, Multiplier: 1},
		fpl.Pick{Element: 102, Multiplier: 1},
		fpl.Pick{Element: 103, Multiplier: 1},
	)
	entry := &fpl.Entry{LastDeadlineBank: 200}

	_, err := SuggestTransfer(ctx, picks, entry)
	if !errors.Is(err, ErrNoReplacements) {
		t.Fatalf("err = %v, want ErrNoReplacements when pool is exhausted", err)
	}
}

func TestDesirability_FavoursFormAndFixtures(t *testing.T) {
	ctx := testContext()

	saka := desirability(ctx, ctx.Players[101])
	cheapo := desirability(ctx, ctx.Players[103])

	if saka <= cheapo {
		t.Errorf("desirability: Saka %v <= Cheapo %v, want higher", saka, cheapo)
	}
}
