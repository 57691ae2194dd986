package gateway

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/pkg/errors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresStore implements ProfileStore against the marketplace database
// directly. Self-hosted deployments use it to skip the REST surface; the
// hosted gateway still owns auth either way.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func NewPostgresStore(cfg PostgresConfig, logger *zap.Logger) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL profile store connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresStore{
		db:     db,
		logger: logger,
	}, nil
}

const profileColumns = "id, full_name, category, bio, avatar_url, price_per_project, subscription_plan, is_verified, updated_at"

func (s *PostgresStore) SelectVerifiedProfiles(ctx context.Context) ([]*domain.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM profiles WHERE is_verified = TRUE", profileColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select verified profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (s *PostgresStore) SelectProfile(ctx context.Context, id string) (*domain.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM profiles WHERE id = $1", profileColumns)

	row := s.db.QueryRowContext(ctx, query, id)
	profile, err := scanProfile(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("profile", id)
		}
		return nil, fmt.Errorf("failed to select profile: %w", err)
	}
	return profile, nil
}

func (s *PostgresStore) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, category, bio, avatar_url, price_per_project, subscription_plan, is_verified, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			category = EXCLUDED.category,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			price_per_project = EXCLUDED.price_per_project,
			subscription_plan = EXCLUDED.subscription_plan,
			is_verified = EXCLUDED.is_verified,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		profile.ID,
		profile.FullName,
		string(profile.Category),
		profile.Bio,
		profile.AvatarURL,
		profile.PricePerProject,
		string(profile.SubscriptionPlan),
		profile.IsVerified,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		profile   domain.Profile
		category  sql.NullString
		plan      sql.NullString
		updatedAt sql.NullTime
	)
	err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&category,
		&profile.Bio,
		&profile.AvatarURL,
		&profile.PricePerProject,
		&plan,
		&profile.IsVerified,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Category = domain.Category(category.String)
	profile.SubscriptionPlan = domain.SubscriptionPlan(plan.String)
	if updatedAt.Valid {
		t := updatedAt.Time
		profile.UpdatedAt = &t
	}
	return &profile, nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
