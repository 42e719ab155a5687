package availability

import (
	"context"
	"math/rand"
	"time"
)

// SimulatedInventoryClient stands in for the partner inventory systems until
// they expose a real API. It answers availability with a configurable
// probability; the contract shape matches what a live client will implement.
type SimulatedInventoryClient struct {
	AvailabilityRate float64
	rng              *rand.Rand
}

func NewSimulatedInventoryClient(availabilityRate float64, seed int64) *SimulatedInventoryClient {
	return &SimulatedInventoryClient{
		AvailabilityRate: availabilityRate,
		rng:              rand.New(rand.NewSource(seed)),
	}
}

func (c *SimulatedInventoryClient) IsAvailable(ctx context.Context, bookingType, location string, date time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.rng.Float64() < c.AvailabilityRate, nil
}
