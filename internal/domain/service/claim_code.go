package service

// ClaimCodeGenerator produces short numeric codes handed to customers when a
// reward is issued. Codes are random, not sequential, so they cannot be
// guessed from a previously seen code.
type ClaimCodeGenerator interface {
	// Generate returns a new 6-digit claim code.
	Generate() (string, error)
}
