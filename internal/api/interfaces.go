package api

import (
	"context"

	"github.com/Shahd3/iCare/pkg/entity"
)

type PharmacyFinderI interface {
	Nearby(ctx context.Context, lat, lon float64, radiusM int) ([]entity.Pharmacy, error)
}
