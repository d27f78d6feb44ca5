package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteRecipe mirrors the recipes table for the embedded store.
type sqliteRecipe struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	RecipeName       string         `gorm:"type:text;not null"`
	RecipeNameFolded string         `gorm:"type:text;not null;default:''"`
	RecipePayload    string         `gorm:"type:text;not null"`
	SourceURL        sql.NullString `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"not null;index"`
}

func (sqliteRecipe) TableName() string { return "recipes" }

func (r sqliteRecipe) toRecipe() Recipe {
	return Recipe{
		ID:            r.ID,
		RecipeName:    r.RecipeName,
		RecipePayload: []byte(r.RecipePayload),
		SourceURL:     r.SourceURL,
		CreatedAt:     r.CreatedAt,
	}
}

// SQLite is a Querier backed by a local SQLite file through gorm. It is meant for
// single-node use; writes go through one connection.
type SQLite struct {
	db *gorm.DB
}

var _ Querier = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and migrates the schema.
func OpenSQLite(path string) (*SQLite, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&sqliteRecipe{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLite{db: gdb}, nil
}

func (s *SQLite) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	row := sqliteRecipe{
		RecipeName:       arg.RecipeName,
		RecipeNameFolded: arg.RecipeNameFolded,
		RecipePayload:    string(arg.RecipePayload),
		SourceURL:        arg.SourceURL,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return Recipe{}, err
	}
	return row.toRecipe(), nil
}

func (s *SQLite) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	var row sqliteRecipe
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Recipe{}, sql.ErrNoRows
	}
	if err != nil {
		return Recipe{}, err
	}
	return row.toRecipe(), nil
}

func (s *SQLite) ListRecipes(ctx context.Context) ([]Recipe, error) {
	var rows []sqliteRecipe
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecipes(rows), nil
}

func (s *SQLite) SearchRecipesByName(ctx context.Context, pattern string) ([]Recipe, error) {
	var rows []sqliteRecipe
	err := s.db.WithContext(ctx).
		Where(`recipe_name_folded LIKE ? ESCAPE '\'`, pattern).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecipes(rows), nil
}

// Close releases the underlying connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRecipes(rows []sqliteRecipe) []Recipe {
	out := make([]Recipe, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toRecipe())
	}
	return out
}
