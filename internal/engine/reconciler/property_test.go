package reconciler_test

import (
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/reconciler"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func genEntry(t *rapid.T, label string) domain.InstalledEntry {
	return domain.InstalledEntry{
		Version:   rapid.StringMatching(`[A-Z][a-z]{2,6} [0-9]\.[0-9]`).Draw(t, label+"_version"),
		VersionID: rapid.StringMatching(`[a-zA-Z0-9]{8}`).Draw(t, label+"_id"),
		Filename:  rapid.StringMatching(`[a-z]{3,8}-[0-9]\.jar`).Draw(t, label+"_file"),
	}
}

func rollbackOutcome(item string, e domain.InstalledEntry) domain.Outcome {
	prev := e.Previous
	return domain.Outcome{
		Item:      item,
		Status:    domain.StatusRolledBack,
		Version:   prev.Version,
		VersionID: prev.VersionID,
		Filename:  prev.Filename,
	}
}

func TestApply_RollbackTwiceIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		current := genEntry(t, "current")
		previous := genEntry(t, "previous")
		if previous.VersionID == current.VersionID && previous.Filename == current.Filename {
			t.Skip("same release")
		}
		current.Previous = previous.AsPrevious()

		m := domain.NewManifest()
		m.Set("item", current)

		once := reconciler.Apply([]domain.Outcome{rollbackOutcome("item", current)}, m)
		rolled, _ := once.Get("item")
		twice := reconciler.Apply([]domain.Outcome{rollbackOutcome("item", rolled)}, once)

		got, _ := twice.Get("item")
		assert.Equal(t, current, got)
	})
}

func TestApply_FailedOutcomesNeverChangeManifest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{3,10}`), 0, 8, rapid.ID[string]).Draw(t, "items")

		m := domain.NewManifest()
		outcomes := make([]domain.Outcome, 0, len(items))
		for i, item := range items {
			if i%2 == 0 {
				m.Set(item, genEntry(t, item))
			}
			outcomes = append(outcomes, domain.Outcome{Item: item, Status: domain.StatusFailed})
		}

		assert.Equal(t, m, reconciler.Apply(outcomes, m))
	})
}
