package availability

import (
	"context"
	"errors"
	"time"

	"azura/utils"

	"go.uber.org/zap"
)

// ErrServiceUnavailable reports that the inventory collaborator itself
// failed (network, timeout). It is distinct from a slot simply being taken.
var ErrServiceUnavailable = errors.New("availability service unavailable")

const checkTimeout = 5 * time.Second

// Alternative slot offsets proposed when the requested time is taken.
var alternativeOffsets = []time.Duration{60 * time.Minute, 120 * time.Minute}

// InventoryClient is the external inventory collaborator contract.
type InventoryClient interface {
	IsAvailable(ctx context.Context, bookingType, location string, date time.Time) (bool, error)
}

// Result carries the availability flag plus alternative slots when the
// requested one is taken.
type Result struct {
	Available    bool        `json:"available"`
	Alternatives []time.Time `json:"alternatives,omitempty"`
}

// Checker asks the inventory collaborator whether a slot is free and
// proposes alternatives when it is not.
type Checker struct {
	Inventory InventoryClient
}

func NewChecker(inventory InventoryClient) *Checker {
	return &Checker{Inventory: inventory}
}

// CheckAvailability returns whether the slot is free. When it is not,
// exactly two alternatives are proposed, +60 and +120 minutes from the
// requested time. A collaborator failure maps to ErrServiceUnavailable
// rather than a silent "not available".
func (c *Checker) CheckAvailability(ctx context.Context, bookingType, location string, date time.Time) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	available, err := c.Inventory.IsAvailable(ctx, bookingType, location, date)
	if err != nil {
		utils.GetLogger().Error("availability: inventory collaborator failed",
			zap.String("type", bookingType),
			zap.String("location", location),
			zap.Error(err))
		return Result{}, ErrServiceUnavailable
	}

	if available {
		return Result{Available: true}, nil
	}

	alternatives := make([]time.Time, 0, len(alternativeOffsets))
	for _, offset := range alternativeOffsets {
		alternatives = append(alternatives, date.Add(offset))
	}
	return Result{Available: false, Alternatives: alternatives}, nil
}
