// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/types"
)

func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	// Check if data already exists
	projects, _ := repos.ProjectRepo.FindAll(ctx)
	if len(projects) > 0 {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating development data...")

	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }
	timePtr := func(t time.Time) *time.Time { return &t }

	nextWeek := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)

	// ============================================
	// PROJECTS
	// ============================================

	// 1. A validated production with a full schedule
	gala := &repository.Project{
		Title:           "Gala de fin d'année",
		DescriptionFR:   strPtr("Soirée de clôture avec spectacle et buffet."),
		DescriptionEN:   strPtr("Closing night with performance and buffet."),
		DescriptionKM:   strPtr("យប់បិទបញ្ចប់ជាមួយការសម្តែង"),
		StartDate:       timePtr(nextWeek),
		DurationMinutes: intPtr(180),
		Status:          types.StatusValidated,
		StatusColor:     types.ColorForStatus(types.StatusValidated),
	}
	repos.ProjectRepo.Create(ctx, gala)

	// 2. A draft with no date yet (stays off the calendar)
	expo := &repository.Project{
		Title:         "Exposition photo",
		DescriptionFR: strPtr("Exposition des ateliers photo."),
		Status:        types.StatusDraft,
		StatusColor:   types.ColorForStatus(types.StatusDraft),
	}
	repos.ProjectRepo.Create(ctx, expo)

	// 3. A submission awaiting validation
	cine := &repository.Project{
		Title:           "Ciné-club",
		DescriptionFR:   strPtr("Projection mensuelle."),
		DescriptionEN:   strPtr("Monthly screening."),
		StartDate:       timePtr(nextWeek.AddDate(0, 0, 3)),
		DurationMinutes: intPtr(120),
		Status:          types.StatusSubmittedForValidation,
		StatusColor:     types.ColorForStatus(types.StatusSubmittedForValidation),
	}
	repos.ProjectRepo.Create(ctx, cine)

	// ============================================
	// RESOURCE REQUIREMENTS
	// ============================================

	if gala.ID != "" {
		repos.ResourceRepo.Create(ctx, &repository.ResourceRequirement{
			ProjectID:       gala.ID,
			RoleRequired:    "Régisseur son",
			StartTime:       nextWeek.Add(-2 * time.Hour),
			DurationMinutes: 360,
		})
		repos.ResourceRepo.Create(ctx, &repository.ResourceRequirement{
			ProjectID:       gala.ID,
			RoleRequired:    "Accueil",
			StartTime:       nextWeek.Add(-1 * time.Hour),
			DurationMinutes: 240,
		})
	}

	log.Println("[Seed] ✅ Development data created")
}
