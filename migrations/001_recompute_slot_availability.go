package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Backfill for slots written before availability became derived
* Recomputes isAvailable from occupancy and adds a version field to
* records that predate versioned updates
 */
func RecomputeSlotAvailability() {
	ctx := context.Background()
	coll := db.DB.Collection("timeSlots")

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	var slots []bson.M
	if err := cursor.All(ctx, &slots); err != nil {
		log.Fatal("Migration failed:", err)
	}

	updated := 0
	for _, slot := range slots {
		current := numericField(slot["currentPatients"])
		max := numericField(slot["maxPatients"])
		available := current < max

		set := bson.M{"isAvailable": available}
		if _, ok := slot["version"]; !ok {
			set["version"] = int64(0)
		}
		if slot["isAvailable"] == available && set["version"] == nil {
			continue
		}
		_, err := coll.UpdateOne(ctx, bson.M{"id": slot["id"]}, bson.M{"$set": set})
		if err != nil {
			log.Fatal("Migration failed:", err)
		}
		updated++
	}
	log.Printf("Migration applied: %d slots updated\n", updated)
}

// Occupancy counts decode as int32, int64 or float64 depending on how the
// record was written (driver insert vs imported JSON); anything else counts
// as zero.
func numericField(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
