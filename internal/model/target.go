package model

// TagPlayer is the well-known tag enemies resolve their target by.
const TagPlayer = "Player"

// Target is a weak reference to something enemies track.
// Holders must check Alive before every use and never keep it alive themselves.
type Target interface {
	Position() Vec3
	Alive() bool
}

// Damageable is the enemy damage contract.
type Damageable interface {
	TakeDamage(amount int)
}

// PlayerDamageable is the player damage contract.
type PlayerDamageable interface {
	TakeDamage(amount float64)
}
