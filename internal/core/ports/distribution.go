package ports

// DistributionProvider identifies the host distribution.
//
//go:generate mockgen -source=distribution.go -destination=mocks/mock_distribution.go -package=mocks
type DistributionProvider interface {
	// Distribution returns the host distribution identifier, or an empty
	// string when it cannot be determined.
	Distribution() (string, error)
}
