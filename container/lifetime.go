package container

// Lifetime governs instance sharing for a registered service.
type Lifetime uint8

const (
	// Transient creates a new instance on every resolution.
	Transient Lifetime = iota

	// Singleton creates one instance per container, lazily on first
	// resolution, and shares it with every later resolution.
	Singleton
)

// String returns the lifetime's name.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}
