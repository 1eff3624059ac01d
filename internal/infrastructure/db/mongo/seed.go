package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/pkg/password"
)

// AdminSeed configures the default admin account created on first startup.
type AdminSeed struct {
	Username string
	Email    string
	Password string
	FullName string
}

// Seeder reconciles the fixed records the system depends on: the five roles
// with their stable ids, and a default admin account. It runs once before
// the server accepts traffic and is idempotent; it never touches existing
// records.
type Seeder struct {
	db     *mongo.Database
	codec  password.Codec
	logger zerolog.Logger
}

func NewSeeder(db *mongo.Database, codec password.Codec, logger zerolog.Logger) *Seeder {
	return &Seeder{db: db, codec: codec, logger: logger}
}

// Run ensures roles first so the admin user's role reference resolves.
func (s *Seeder) Run(ctx context.Context, admin AdminSeed) error {
	if err := s.ensureRoles(ctx); err != nil {
		return err
	}
	return s.ensureAdminUser(ctx, admin)
}

func (s *Seeder) ensureRoles(ctx context.Context) error {
	coll := s.db.Collection(rolesCollection)

	created := 0
	for _, role := range domain.AllRoles() {
		res, err := coll.UpdateOne(ctx,
			bson.M{"_id": role.ID},
			bson.M{"$setOnInsert": bson.M{"name": string(role.Name)}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
		if res.UpsertedCount > 0 {
			s.logger.Info().Str("role", string(role.Name)).Int64("id", role.ID).Msg("seeded missing role")
			created++
		}
	}
	s.logger.Info().Int("created", created).Msg("role seeding completed")
	return nil
}

func (s *Seeder) ensureAdminUser(ctx context.Context, admin AdminSeed) error {
	users := NewUserRepository(s.db)

	existing, err := users.FindByUsername(ctx, admin.Username)
	if err == nil {
		s.logger.Info().Str("username", existing.Username).Int64("id", existing.ID).Msg("admin user already exists")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := s.codec.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	roleID := domain.RoleIDAdmin
	created, err := users.Create(ctx, &domain.User{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: hash,
		FullName:     admin.FullName,
		IsActive:     true,
		RoleID:       &roleID,
	})
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.logger.Info().Str("username", created.Username).Int64("id", created.ID).Msg("admin user created")
	return nil
}
