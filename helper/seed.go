package helper

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	departmentModel "hms/internal/domains/department/model"
	departmentRepository "hms/internal/domains/department/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepository "hms/internal/domains/room/repository"
	"hms/shared/failure"

	"github.com/rs/zerolog/log"
)

// DefaultRooms are inserted by Seed when absent.
var DefaultRooms = []roomModel.Room{
	{Number: 101, Type: "Single", Available: true},
	{Number: 102, Type: "Double", Available: true},
}

// Seed inserts the default rooms and departments. Rows that already exist are left untouched.
func Seed(ctx context.Context, cfg *config.Config) error {
	db := postgres.New(cfg)
	defer db.Close()

	ot := otel.New(cfg)

	return SeedWith(ctx, roomRepository.New(db, ot), departmentRepository.New(db, ot))
}

func SeedWith(ctx context.Context, rooms roomRepository.Room, departments departmentRepository.Department) error {
	for _, room := range DefaultRooms {
		if err := rooms.Insert(ctx, room); err != nil && !failure.IsKind(err, failure.KindDuplicateKey) {
			return fmt.Errorf("failed to seed room %d: %w", room.Number, err)
		}
	}

	for _, department := range departmentModel.Defaults {
		if err := departments.Insert(ctx, department); err != nil && !failure.IsKind(err, failure.KindDuplicateKey) {
			return fmt.Errorf("failed to seed department %s: %w", department.Name, err)
		}
	}

	log.Info().Int("rooms", len(DefaultRooms)).Int("departments", len(departmentModel.Defaults)).Msg("Seed data applied")

	return nil
}
