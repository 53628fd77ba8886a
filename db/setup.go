package db

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/karzeg/ztp-project-blog/internal/models"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	entities := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	}

	migrator := DB.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := DB.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}

var seedCategories = []string{"News", "Tutorials", "Releases", "Opinions"}

var seedTags = []string{
	"go", "web", "databases", "testing", "tooling",
	"performance", "security", "deployment", "opensource", "howto",
}

// SeedDemoData loads demo fixtures: an admin account, categories, tags and a
// handful of posts with comments. It is a no-op when users already exist.
func SeedDemoData() error {
	var userCount int64
	if err := DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        "admin@example.com",
		Login:        "admin",
		PasswordHash: string(hash),
		Roles:        models.RolesJSON(models.RoleUser, models.RoleAdmin),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(seedCategories))
	for _, title := range seedCategories {
		categories = append(categories, models.Category{Title: title})
	}
	if err := DB.Create(&categories).Error; err != nil {
		return err
	}

	tags := make([]models.Tag, 0, len(seedTags))
	for _, title := range seedTags {
		tags = append(tags, models.Tag{Title: title})
	}
	if err := DB.Create(&tags).Error; err != nil {
		return err
	}

	for i := 0; i < 10; i++ {
		post := models.Post{
			Title:      "Sample post #" + string(rune('A'+i)),
			Content:    "Placeholder content for browsing the demo instance.",
			Date:       time.Now().AddDate(0, 0, -i),
			CategoryID: categories[i%len(categories)].ID,
			AuthorID:   &admin.ID,
			Tags:       []models.Tag{tags[i%len(seedTags)], tags[(i+1)%len(seedTags)]},
		}
		if err := DB.Create(&post).Error; err != nil {
			return err
		}

		comment := models.Comment{
			Content:  "First!",
			Date:     post.Date.Add(2 * time.Hour),
			PostID:   post.ID,
			AuthorID: &admin.ID,
		}
		if err := DB.Create(&comment).Error; err != nil {
			return err
		}
	}

	return nil
}
