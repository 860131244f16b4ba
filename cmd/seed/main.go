// Command seed prepares a database for local development: it migrates the
// schema, creates the default administrator and loads a sample catalog.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"luxe/config"
	"luxe/internal/infra/auth"
	"luxe/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@luxe.com"
	adminPassword = "admin123"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func run(logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	if err := migrate(db); err != nil {
		return err
	}
	if err := seedAdmin(db, cfg, logger); err != nil {
		return err
	}

	return seedProducts(db, logger)
}

func migrate(db *gorm.DB) error {
	// uuid_generate_v7 comes from the pg_uuidv7 extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.CartItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	)

	return errors.Wrap(err, "failed to migrate schema")
}

func seedAdmin(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&model.UserModel{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check for admin account")
	}
	if count > 0 {
		logger.Info("Admin account already present", slog.String("email", adminEmail))

		return nil
	}

	hasher := auth.NewBcryptHasher(cfg)
	hashed, err := hasher.Hash(adminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &model.UserModel{
		Username: adminUsername,
		Email:    adminEmail,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		return errors.Wrap(err, "failed to create admin account")
	}

	logger.Info("Admin account created", slog.String("email", adminEmail))

	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func seedProducts(db *gorm.DB, logger *slog.Logger) error {
	products := []*model.ProductModel{
		{
			Name:        "Chemise en lin blanche",
			Description: "Chemise légère en lin naturel, coupe décontractée, idéale pour les journées chaudes.",
			Price:       25000,
			Category:    "clothes",
			Materials:   "100% lin",
			Care:        "Lavage à la main, repassage à basse température",
		},
		{
			Name:        "Robe wax élégante",
			Description: "Robe longue en tissu wax aux motifs colorés, confectionnée à la main.",
			Price:       45000,
			SalePrice:   int64Ptr(38000),
			Category:    "clothes",
			Materials:   "Coton wax",
			Care:        "Lavage à froid, séchage à l'ombre",
		},
		{
			Name:        "Parfum Oud Royal",
			Description: "Eau de parfum intense aux notes de oud, d'ambre et de bois de santal. Flacon de 100 ml.",
			Price:       60000,
			Category:    "perfumes",
			Materials:   "",
			Care:        "Conserver à l'abri de la lumière",
		},
		{
			Name:        "Eau de toilette Fleur d'Oranger",
			Description: "Fragrance fraîche et florale pour tous les jours. Flacon de 50 ml.",
			Price:       30000,
			SalePrice:   int64Ptr(24000),
			Category:    "perfumes",
			Materials:   "",
			Care:        "Conserver à l'abri de la chaleur",
		},
		{
			Name:        "Sac à main en cuir",
			Description: "Sac à main en cuir véritable, doublure en tissu, fermeture éclair en laiton.",
			Price:       55000,
			Category:    "accessories",
			Materials:   "Cuir pleine fleur",
			Care:        "Entretenir avec un baume pour cuir",
		},
		{
			Name:        "Foulard en soie",
			Description: "Foulard carré en soie imprimée, 90 x 90 cm.",
			Price:       18000,
			Category:    "accessories",
			Materials:   "100% soie",
			Care:        "Nettoyage à sec uniquement",
		},
	}

	for _, product := range products {
		var count int64
		if err := db.Model(&model.ProductModel{}).Where("name = ?", product.Name).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check for product "+product.Name)
		}
		if count > 0 {
			continue
		}

		if err := db.Create(product).Error; err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to create product %q", product.Name))
		}

		logger.Info("Product created", slog.String("name", product.Name))
	}

	return nil
}
