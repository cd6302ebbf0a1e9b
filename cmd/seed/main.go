package main

import (
	"fmt"

	"gigconnect/pkg/config"
	"gigconnect/pkg/database"
	"gigconnect/pkg/logger"
	"gigconnect/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email  string
		name   string
		phone  string
		age    int
		skills []string
		role   models.UserRole
	}{
		{"admin@gigconnect.dev", "Admin", "+10000000000", 35, []string{"administration"}, models.RoleAdmin},
		{"alice@test.com", "Alice Carpenter", "+10000000001", 29, []string{"carpentry", "painting"}, models.RoleMember},
		{"bob@test.com", "Bob Gardener", "+10000000002", 41, []string{"gardening", "landscaping"}, models.RoleMember},
		{"charlie@test.com", "Charlie Plumber", "+10000000003", 33, []string{"plumbing"}, models.RoleMember},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			Email:         userData.email,
			Password:      string(hashedPassword),
			Name:          userData.name,
			Phone:         userData.phone,
			Age:           userData.age,
			Skills:        datatypes.NewJSONSlice(userData.skills),
			Location:      models.Location{Country: "USA", State: "CA", City: "San Francisco"},
			Ratings:       datatypes.NewJSONSlice([]float64{}),
			AverageRating: models.DefaultAverageRating,
			Coins:         models.StartingCoins,
			Role:          userData.role,
		}

		var existing models.User
		if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", user.Email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
		log.Info("Created user %s", user.Email)
		userIDs = append(userIDs, user.ID)
	}

	testCourses := []models.Course{
		{Title: "Advanced Carpentry", Description: "Framing, joinery and finish work.", Content: "https://content.gigconnect.dev/courses/carpentry", Category: "trades", Cost: 200},
		{Title: "Residential Plumbing", Description: "Pipes, fittings and fixtures.", Content: "https://content.gigconnect.dev/courses/plumbing", Category: "trades", Cost: 150},
		{Title: "Landscape Design", Description: "Planning and planting outdoor spaces.", Content: "https://content.gigconnect.dev/courses/landscaping", Category: "outdoors", Cost: 300},
	}

	for i := range testCourses {
		course := &testCourses[i]

		var existing models.Course
		if err := db.Where("title = ?", course.Title).First(&existing).Error; err == nil {
			log.Info("Course %q already exists, skipping", course.Title)
			continue
		}

		if err := db.Create(course).Error; err != nil {
			return fmt.Errorf("failed to create course %q: %w", course.Title, err)
		}
		log.Info("Created course %q (cost %d)", course.Title, course.Cost)
	}

	if len(userIDs) > 1 {
		salary := 500
		job := &models.Job{
			Title:       "Build a garden shed",
			Description: "Need an 8x10 shed built from a kit, materials on site.",
			Location:    models.JobLocation{Lat: 37.7749, Lng: -122.4194, Country: "USA", State: "CA", City: "San Francisco"},
			PosterID:    userIDs[1],
			Status:      models.JobStatusOpen,
			Salary:      &salary,
		}

		var existing models.Job
		if err := db.Where("title = ? AND poster_id = ?", job.Title, job.PosterID).First(&existing).Error; err != nil {
			if err := db.Create(job).Error; err != nil {
				return fmt.Errorf("failed to create job: %w", err)
			}
			log.Info("Created job %q", job.Title)
		}
	}

	return nil
}
