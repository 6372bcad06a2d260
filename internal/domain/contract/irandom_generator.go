package contract

type IRandomGenerator interface {
	// GenerateRandomToken returns a hex-encoded token built from n random
	// bytes (so 32 bytes gives 256 bits of entropy).
	GenerateRandomToken(n int) (string, error)
}
