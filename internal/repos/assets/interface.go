package assets

import "context"

// AssetType is immutable reference data created by administration, never by
// the wallet service.
type AssetType struct {
	ID          int64
	Name        string
	Symbol      string
	Description string
	Decimals    int32
}

//go:generate mockgen -source=interface.go -destination=../mocks/assets_mock.go -package=mocks

type Assets interface {
	// ListActive returns active asset types ordered by name.
	ListActive(ctx context.Context) ([]AssetType, error)
}
