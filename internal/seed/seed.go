package seed

import (
	"errors"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

// Run populates a fresh database with the admin account and the initial
// portfolio content. Idempotent: existing rows are left alone.
func Run(db *gorm.DB, log *zap.Logger) error {
	if err := seedAdmin(db, log); err != nil {
		return err
	}
	techs, err := seedTechnologies(db, log)
	if err != nil {
		return err
	}
	if err := seedProjects(db, log, techs); err != nil {
		return err
	}
	if err := seedExperiences(db, log); err != nil {
		return err
	}
	return seedEngagements(db, log)
}

func seedAdmin(db *gorm.DB, log *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("admin user already exists, skipping", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Info("admin user created", zap.String("email", email))
	return nil
}

func seedTechnologies(db *gorm.DB, log *zap.Logger) (map[string]models.Technology, error) {
	toSeed := []models.Technology{
		{Name: "Go", Category: "backend"},
		{Name: "PostgreSQL", Category: "database"},
		{Name: "Redis", Category: "database"},
		{Name: "React", Category: "frontend"},
		{Name: "TypeScript", Category: "frontend"},
		{Name: "Docker", Category: "infra"},
	}

	out := make(map[string]models.Technology, len(toSeed))
	created := 0

	for _, t := range toSeed {
		var existing models.Technology
		err := db.Where("name = ?", t.Name).First(&existing).Error
		if err == nil {
			out[existing.Name] = existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if err := db.Create(&t).Error; err != nil {
			return nil, err
		}
		out[t.Name] = t
		created++
	}

	log.Info("technologies seeded", zap.Int("created", created))
	return out, nil
}

func seedProjects(db *gorm.DB, log *zap.Logger, techs map[string]models.Technology) error {
	toSeed := []models.Project{
		{
			Title:     "Portfolio API",
			Slug:      "portfolio-api",
			Summary:   "The backend powering this site: content, contact relay and appointment scheduling.",
			RepoURL:   "https://github.com/lucasmonteiro/portfolio-api",
			Featured:  true,
			SortOrder: 1,
			Technologies: []models.Technology{
				techs["Go"], techs["PostgreSQL"], techs["Redis"],
			},
		},
		{
			Title:     "Task Board",
			Slug:      "task-board",
			Summary:   "A kanban-style task board with realtime updates.",
			SortOrder: 2,
			Technologies: []models.Technology{
				techs["React"], techs["TypeScript"],
			},
		},
	}

	created := 0
	for _, p := range toSeed {
		var existing models.Project
		err := db.Where("slug = ?", p.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Create(&p).Error; err != nil {
			return err
		}
		created++
	}

	log.Info("projects seeded", zap.Int("created", created))
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedExperiences(db *gorm.DB, log *zap.Logger) error {
	end := date(2023, time.December, 31)

	toSeed := []models.Experience{
		{
			Role:      "Senior Backend Engineer",
			Company:   "Acme Cloud",
			Location:  "Remote",
			StartDate: date(2024, time.January, 2),
			Current:   true,
			Summary:   "Designing and operating Go services for a multi-tenant platform.",
			SortOrder: 1,
		},
		{
			Role:      "Backend Engineer",
			Company:   "Bitwise Labs",
			Location:  "São Paulo",
			StartDate: date(2021, time.March, 1),
			EndDate:   &end,
			Summary:   "Built payment and notification services.",
			SortOrder: 2,
		},
	}

	created := 0
	for _, e := range toSeed {
		var count int64
		if err := db.Model(&models.Experience{}).
			Where("role = ? AND company = ?", e.Role, e.Company).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&e).Error; err != nil {
			return err
		}
		created++
	}

	log.Info("experiences seeded", zap.Int("created", created))
	return nil
}

func seedEngagements(db *gorm.DB, log *zap.Logger) error {
	toSeed := []models.Engagement{
		{
			Role:         "Mentor",
			Organization: "Go Brasil Community",
			URL:          "https://gobr.dev",
			StartDate:    date(2022, time.June, 1),
			Current:      true,
			Summary:      "Monthly mentoring sessions for developers starting with Go.",
			SortOrder:    1,
		},
	}

	created := 0
	for _, e := range toSeed {
		var count int64
		if err := db.Model(&models.Engagement{}).
			Where("role = ? AND organization = ?", e.Role, e.Organization).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&e).Error; err != nil {
			return err
		}
		created++
	}

	log.Info("engagements seeded", zap.Int("created", created))
	return nil
}
