package model

import "sync/atomic"

// ObjectIDGenerator hands out unique object IDs per entity class.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid, level geometry)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: Enemies
//	0x30000000 - 0x3FFFFFFF: Bullets and projectiles
type ObjectIDGenerator struct {
	nextPlayerID     atomic.Uint32
	nextEnemyID      atomic.Uint32
	nextProjectileID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(0x10000000)
	gen.nextEnemyID.Store(0x20000000)
	gen.nextProjectileID.Store(0x30000000)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextEnemyID generates next unique enemy object ID.
func (g *ObjectIDGenerator) NextEnemyID() uint32 {
	return g.nextEnemyID.Add(1)
}

// NextProjectileID generates next unique bullet/projectile object ID.
func (g *ObjectIDGenerator) NextProjectileID() uint32 {
	return g.nextProjectileID.Add(1)
}

var globalIDGenerator = NewObjectIDGenerator()

// IDGenerator returns the process-wide object ID generator.
func IDGenerator() *ObjectIDGenerator {
	return globalIDGenerator
}
