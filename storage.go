package converter

type Storage interface {
	Store(Conversion) (ConversionWithID, error)
	Get(from, to string, page, perPage int64) ([]ConversionWithID, error)
	List(page, perPage int64) ([]ConversionWithID, error)
	Len() int
}
