package client

// FavoritesStore keeps the device-local favorite set. Codes are stored
// upper-cased and listed in insertion order.
type FavoritesStore interface {
	Add(code string) error
	Remove(code string) error
	Has(code string) (bool, error)
	List() ([]string, error)
	Replace(codes []string) error
	Clear() error
	Close() error
}
