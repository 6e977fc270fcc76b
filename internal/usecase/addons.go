package usecase

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"

	"github.com/google/uuid"
)

// ResolvedAddOns is the outcome of pricing a list of requested add-ons.
// Skipped carries the ids that were dropped (blank, unknown, inactive or
// zero quantity) so callers can log them; dropping instead of rejecting is
// deliberate so a stale booking form never blocks the whole reservation.
type ResolvedAddOns struct {
	Lines   []entity.ReservationAddOn
	Total   float64
	Skipped []string
}

// resolveAddOns validates each requested pair against the catalog and emits
// snapshot lines with the current catalog price. Catalog lookup failures are
// infrastructure errors and propagate; a missing or inactive entry is not an
// error.
func resolveAddOns(ctx context.Context, catalog repository.AddOnRepository, selections []request.AddOnSelectionRequest) (*ResolvedAddOns, error) {
	resolved := &ResolvedAddOns{
		Lines: make([]entity.ReservationAddOn, 0, len(selections)),
	}

	for _, sel := range selections {
		if sel.AddOnID == "" || sel.Quantity <= 0 {
			resolved.Skipped = append(resolved.Skipped, sel.AddOnID)
			continue
		}

		id, err := uuid.Parse(sel.AddOnID)
		if err != nil {
			// Malformed id is indistinguishable from unknown: drop it
			resolved.Skipped = append(resolved.Skipped, sel.AddOnID)
			continue
		}

		addOn, err := catalog.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("look up addon %s: %w", sel.AddOnID, err)
		}
		if addOn == nil || !addOn.IsActive {
			resolved.Skipped = append(resolved.Skipped, sel.AddOnID)
			continue
		}

		line := entity.ReservationAddOn{
			AddOnID:   addOn.ID,
			AddOnName: addOn.Name,
			Quantity:  sel.Quantity,
			UnitPrice: addOn.Price,
			LineTotal: addOn.Price * float64(sel.Quantity),
		}
		resolved.Lines = append(resolved.Lines, line)
		resolved.Total += line.LineTotal
	}

	return resolved, nil
}
