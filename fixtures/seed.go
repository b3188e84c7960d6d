package fixtures

import (
	"context"
	"errors"
	"fmt"

	"evdealer/repository"

	log "github.com/sirupsen/logrus"
)

// Seed 寫入內建車款與經銷商；已存在的資料略過
func Seed(ctx context.Context, vehicles repository.VehicleRepository, dealers repository.DealerRepository) (int, int, error) {
	var nv, nd int
	for _, v := range Vehicles() {
		v := v
		if err := vehicles.Create(ctx, &v); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				log.Printf("Vehicle %s already exists, skipping", v.ID)
				continue
			}
			return nv, nd, fmt.Errorf("failed to seed vehicle %s: %w", v.ID, err)
		}
		nv++
	}
	for _, d := range Dealers() {
		d := d
		if err := dealers.Create(ctx, &d); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				log.Printf("Dealer %s already exists, skipping", d.ID)
				continue
			}
			return nv, nd, fmt.Errorf("failed to seed dealer %s: %w", d.ID, err)
		}
		nd++
	}
	log.Printf("Seeded %d vehicle(s) and %d dealer(s)", nv, nd)
	return nv, nd, nil
}
