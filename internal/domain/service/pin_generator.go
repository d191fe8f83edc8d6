package service

// PinGenerator produces the numeric PINs handed to newly provisioned
// client accounts. A generated PIN is always six digits, so the first
// digit is never zero.
type PinGenerator interface {
	Generate() (string, error)
}
