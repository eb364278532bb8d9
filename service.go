package converter

type (
	Service interface {
		Convert(from, to string, amount float64) (Conversion, error)
		Rate(from, to string) (float64, error)
		SupportedCodes() []string
	}
)
