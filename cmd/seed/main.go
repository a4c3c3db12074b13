package main

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/db"
	"github.com/cinelog/cinelog-backend/pkg/util"
)

// Seeds the database with an admin account, the category tree, the
// closed language/country pools and a handful of sample movies.
// Everything is idempotent: rerunning the seeder changes nothing.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(cfg); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(db.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	conn := db.GetDB()

	if err := seedAdmin(conn); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	if err := seedCategories(conn); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}
	if err := seedLanguages(conn); err != nil {
		log.Fatal("Failed to seed languages:", err)
	}
	if err := seedCountries(conn); err != nil {
		log.Fatal("Failed to seed countries:", err)
	}
	if err := seedMovies(conn); err != nil {
		log.Fatal("Failed to seed sample movies:", err)
	}

	fmt.Println("Seeding completed successfully!")
}

func seedAdmin(conn *gorm.DB) error {
	hash, err := util.HashPassword("admin1234")
	if err != nil {
		return err
	}
	admin := model.User{
		Username:     "admin",
		Email:        "admin@cinelog.local",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	result := conn.Where("username = ?", admin.Username).FirstOrCreate(&admin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		fmt.Println("Created admin user (admin / admin1234 - change the password!)")
	}
	return nil
}

func seedCategories(conn *gorm.DB) error {
	names := []string{"Feature", "Short", "Documentary", "Series", "Animation"}
	for _, name := range names {
		category := model.Category{Name: name, HasItems: true}
		if err := conn.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d categories\n", len(names))
	return nil
}

func seedLanguages(conn *gorm.DB) error {
	names := []string{
		"English", "French", "German", "Spanish", "Italian",
		"Japanese", "Korean", "Mandarin", "Hindi", "Portuguese",
	}
	for _, name := range names {
		language := model.Language{Name: name}
		if err := conn.Where("name = ?", name).FirstOrCreate(&language).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d languages\n", len(names))
	return nil
}

func seedCountries(conn *gorm.DB) error {
	countries := []model.Country{
		{Name: "United States", Code: "US"},
		{Name: "United Kingdom", Code: "GB"},
		{Name: "France", Code: "FR"},
		{Name: "Germany", Code: "DE"},
		{Name: "Spain", Code: "ES"},
		{Name: "Italy", Code: "IT"},
		{Name: "Japan", Code: "JP"},
		{Name: "South Korea", Code: "KR"},
		{Name: "China", Code: "CN"},
		{Name: "India", Code: "IN"},
	}
	for _, country := range countries {
		record := country
		if err := conn.Where("code = ?", country.Code).FirstOrCreate(&record).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d countries\n", len(countries))
	return nil
}

func seedMovies(conn *gorm.DB) error {
	var category model.Category
	if err := conn.Where("name = ?", "Feature").First(&category).Error; err != nil {
		return err
	}

	date := func(value string) *time.Time {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil
		}
		return &t
	}

	movies := []model.Movie{
		{Name: "The Long Night", URL: "the-long-night", CategoryID: category.ID, ReleaseDate: date("2019-10-04")},
		{Name: "Paper Cranes", URL: "paper-cranes", CategoryID: category.ID, ReleaseDate: date("2021-03-19")},
		{Name: "Glass Harbor", URL: "glass-harbor", CategoryID: category.ID, ReleaseDate: date("2023-07-14")},
	}
	created := 0
	for _, movie := range movies {
		record := movie
		result := conn.Where("url = ?", movie.URL).FirstOrCreate(&record)
		if result.Error != nil {
			return result.Error
		}
		created += int(result.RowsAffected)
	}
	fmt.Printf("Seeded %d sample movies\n", created)
	return nil
}
