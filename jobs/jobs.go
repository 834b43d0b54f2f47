package jobs

import (
	"context"
	"log"

	"MedNetwork/models"
	"MedNetwork/role"
	"MedNetwork/services"
	"MedNetwork/store"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// StartDailyScheduler keeps the 4-week slot horizon rolling. As each day
// passes, the nightly run generates the day that slid into range.
func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily slot horizon scheduler...")
		RunHorizonScheduler()
	})

	c.Start()
}

func RunHorizonScheduler() {
	ctx := context.Background()
	st := store.NewMongoStore()

	var schedules []models.WeeklySchedule
	if err := st.GetAll(ctx, store.WeeklySchedules, &schedules); err != nil {
		log.Println("Error loading weekly schedules:", err)
		return
	}

	slots := services.SlotService{Store: st}
	for _, schedule := range schedules {
		created, err := slots.GenerateForSchedule(ctx, schedule)
		if err != nil {
			log.Println("Error generating slots for doctor:", schedule.DoctorID, err)
			continue
		}
		if created > 0 {
			log.Println("Generated", created, "slots for doctor", schedule.DoctorID)
		}
	}
}

/*
* Seed the role collection the route guards read from
* Seed the admin account and the specialization catalog
* Both are no-ops when the data already exists
 */
func SeedBaseline() {
	ctx := context.Background()
	SeedRoles(ctx)

	seed := services.SeedService{Store: store.NewMongoStore()}
	if err := seed.EnsureSeedData(ctx); err != nil {
		log.Println("Error seeding baseline data:", err)
	}
}

func SeedRoles(ctx context.Context) {
	coll := db.OpenCollections("role")
	for _, r := range role.DefaultRoles() {
		filter := bson.M{"roleCode": r.RoleCode}
		count, err := coll.CountDocuments(ctx, filter)
		if err != nil {
			log.Println("Error checking role:", err)
			continue
		}
		if count == 0 {
			if _, err := db.CreateOne(ctx, coll, r); err != nil {
				log.Println("Error inserting role:", r.RoleCode, err)
			}
		}
	}
}
