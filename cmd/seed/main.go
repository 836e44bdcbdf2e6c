package main

import (
	"errors"
	"log"
	"os"

	"github.com/kaiwenliu/careconnect-go/internal/config"
	"github.com/kaiwenliu/careconnect-go/internal/config/db"
	"github.com/kaiwenliu/careconnect-go/internal/domain/audit"
	"github.com/kaiwenliu/careconnect-go/internal/domain/category"
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/internal/domain/shortlist"
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type fixture struct {
	Users []struct {
		Role     string `yaml:"role"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
		Email    string `yaml:"email"`
		Phone    string `yaml:"phone"`
	} `yaml:"users"`
	Categories []string `yaml:"categories"`
	Requests   []struct {
		Pin         string `yaml:"pin"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Category    string `yaml:"category"`
	} `yaml:"requests"`
}

// Seeds the database from a YAML fixture. Safe to re-run: existing
// usernames and category names are left alone.
func main() {
	config.LoadConfig()
	db.Init()

	if err := db.DB.AutoMigrate(
		&user.User{},
		&user.Profile{},
		&category.Category{},
		&request.Request{},
		&shortlist.Shortlist{},
		&history.ServiceHistory{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(config.SeedFixture)
	if err != nil {
		log.Fatalf("Failed to read fixture %s: %v", config.SeedFixture, err)
	}

	var f fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		log.Fatalf("Failed to parse fixture: %v", err)
	}

	users := make(map[string]*user.User, len(f.Users))
	for _, u := range f.Users {
		seeded, err := seedUser(u.Role, u.Username, u.Password, u.FullName, u.Email, u.Phone)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Username, err)
		}
		users[u.Username] = seeded
	}

	cats := make(map[string]*category.Category, len(f.Categories))
	for _, name := range f.Categories {
		seeded, err := seedCategory(name)
		if err != nil {
			log.Fatalf("Failed to seed category %s: %v", name, err)
		}
		cats[name] = seeded
	}

	for _, r := range f.Requests {
		if err := seedRequest(users, cats, r.Pin, r.Title, r.Description, r.Category); err != nil {
			log.Fatalf("Failed to seed request %q: %v", r.Title, err)
		}
	}

	log.Printf("Seeded %d users, %d categories, %d requests", len(f.Users), len(f.Categories), len(f.Requests))
}

func seedUser(role, username, password, fullName, email, phone string) (*user.User, error) {
	var existing user.User
	err := db.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Role:     role,
		Username: username,
		Password: string(hashed),
		IsActive: true,
	}
	return u, db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return tx.Create(&user.Profile{
			UserID:   u.ID,
			FullName: fullName,
			Email:    email,
			Phone:    phone,
		}).Error
	})
}

func seedCategory(name string) (*category.Category, error) {
	var existing category.Category
	err := db.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat := &category.Category{Name: name}
	return cat, db.DB.Create(cat).Error
}

func seedRequest(users map[string]*user.User, cats map[string]*category.Category, pin, title, description, catName string) error {
	owner, ok := users[pin]
	if !ok {
		return errors.New("unknown pin username " + pin)
	}

	var count int64
	if err := db.DB.Model(&request.Request{}).
		Where("pin_id = ? AND title = ?", owner.ID, title).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	req := &request.Request{
		PinID:       owner.ID,
		Title:       title,
		Description: description,
		Status:      request.StatusOpen,
	}
	if cat, ok := cats[catName]; ok {
		req.CategoryID = &cat.ID
	}
	return db.DB.Create(req).Error
}
