package parameter

import "time"

// Pickup Spawning
const (
	// PickupRadius is the collection overlap radius for all pickup kinds
	PickupRadius = 0.8

	// PickupSpawnInterval is the base interval between pickup spawns
	PickupSpawnInterval = 6 * time.Second

	// PickupMaxAlive caps concurrently spawned pickups per kind
	PickupMaxAlive = 3
)
