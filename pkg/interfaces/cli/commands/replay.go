package commands

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/vsinha/pricesim/pkg/application/services/scenario"
	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/pricesim/pkg/infrastructure/repositories/script"
)

// Replayer applies scripted edits to a scenario store in order
type Replayer struct {
	store    *scenario.Store
	progress bool
}

// NewReplayer creates a replayer for store, optionally drawing a progress bar
func NewReplayer(store *scenario.Store, progress bool) *Replayer {
	return &Replayer{store: store, progress: progress}
}

// Replay applies edits one by one and stops at the first failure. It
// returns the number of edits applied.
func (r *Replayer) Replay(ctx context.Context, edits []script.Edit) (int, error) {
	var bar *progressbar.ProgressBar
	if r.progress && len(edits) > 0 {
		bar = progressbar.Default(int64(len(edits)), "replaying edits")
	}

	for i, edit := range edits {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := r.apply(edit); err != nil {
			return i, fmt.Errorf("edit %d (%s): %w", i+1, edit.Op, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return len(edits), nil
}

func (r *Replayer) apply(edit script.Edit) error {
	switch edit.Op {
	case script.OpSetContext:
		r.store.SetScenarioContext(scenario.Scope{Perimetre: edit.Perimetre, Label: edit.Label})
		return nil
	case script.OpReset:
		r.store.ResetToOriginal()
		return nil
	case script.OpExit:
		r.store.ExitSimulation()
		return nil
	}

	kind, err := entities.ParseCollectionKind(edit.Collection)
	if err != nil {
		return err
	}

	switch edit.Op {
	case script.OpSetPriceFirst:
		return r.store.SetPriceFirst(kind, edit.ID, *edit.Value)
	case script.OpSetPriceLast:
		return r.store.SetPriceLast(kind, edit.ID, *edit.Value)
	case script.OpSetEvolution:
		return r.store.SetEvolution(kind, edit.ID, *edit.Value)
	case script.OpSetPercentage:
		return r.store.SetPercentage(kind, edit.ID, *edit.Value)
	case script.OpSetIntermediatePrice:
		return r.store.SetIntermediatePrice(kind, edit.ID, edit.PeriodIndex, *edit.Value)
	case script.OpAddValue:
		item, err := entities.NewValueItem(edit.ID, edit.Code, edit.Label, valueOr(edit.PriceFirst), valueOr(edit.PriceLast))
		if err != nil {
			return err
		}
		return r.store.AddValueItem(kind, *item)
	case script.OpAddVolume:
		item, err := entities.NewVolumeItem(edit.ID, edit.Code, edit.Label, valueOr(edit.Value))
		if err != nil {
			return err
		}
		return r.store.AddVolumeItem(kind, *item)
	case script.OpRemoveValue:
		return r.store.RemoveValueItem(kind, edit.ID)
	case script.OpRemoveVolume:
		return r.store.RemoveVolumeItem(kind, edit.ID)
	case script.OpUpdateReference:
		return r.store.UpdateReference(kind, edit.ID, scenario.ReferenceUpdate{
			Code:       edit.Code,
			Label:      edit.Label,
			PriceFirst: edit.PriceFirst,
			PriceLast:  edit.PriceLast,
		})
	case script.OpSetDecoupage:
		mode, err := entities.ParseDecoupage(edit.Decoupage)
		if err != nil {
			return err
		}
		var period *entities.Period
		if edit.From != "" && edit.To != "" {
			if period, err = csv.ParsePeriod(edit.From, edit.To); err != nil {
				return err
			}
		}
		return r.store.SetDecoupage(kind, edit.ID, mode, period)
	default:
		return fmt.Errorf("unsupported op %q", edit.Op)
	}
}

func valueOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
