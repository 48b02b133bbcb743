package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/internal/service"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "Admin#123"
)

var defaultCategories = []string{
	"Electronics", "Books", "Clothing", "Home & Garden", "Toys",
	"Sports", "Automotive", "Grocery", "Health", "Music",
}

// Run bootstraps roles, the default admin account and starter categories.
// Every step is idempotent, so it is safe on every startup.
func Run(
	ctx context.Context,
	users repository.UserRepository,
	roles repository.RoleRepository,
	categories repository.CategoryRepository,
	log *zap.Logger,
) error {
	adminRole, err := roles.EnsureRole(ctx, service.RoleAdmin)
	if err != nil {
		return err
	}
	if _, err := roles.EnsureRole(ctx, service.RoleUser); err != nil {
		return err
	}

	if err := seedAdmin(ctx, users, adminRole, log); err != nil {
		return err
	}
	return seedCategories(ctx, categories, log)
}

// seedAdmin creates the default admin only when no user holds the admin
// email. Existence is decided by the email lookup alone.
func seedAdmin(ctx context.Context, users repository.UserRepository, adminRole *model.Role, log *zap.Logger) error {
	_, err := users.FindByEmail(ctx, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := &model.User{
		Email:         adminEmail,
		Username:      "admin",
		FirstName:     "Admin",
		LastName:      "Admin",
		SecurityStamp: uuid.New().String(),
	}
	if err := users.CreateWithPassword(ctx, admin, adminPassword); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Another instance seeded concurrently.
			return nil
		}
		return err
	}
	if err := users.AddToRole(ctx, admin, adminRole); err != nil {
		return err
	}

	log.Info("seeded default admin user", zap.String("email", adminEmail))
	return nil
}

func seedCategories(ctx context.Context, categories repository.CategoryRepository, log *zap.Logger) error {
	count, err := categories.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	batch := make([]model.Category, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		batch = append(batch, model.Category{Name: name})
	}
	if err := categories.CreateBatch(ctx, batch); err != nil {
		return err
	}

	log.Info("seeded categories", zap.Int("count", len(batch)))
	return nil
}
