package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"coworking/internal/database"
	"coworking/internal/domain"
	"coworking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "coworking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (FK-safe order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM invoice")
	db.Exec("DELETE FROM service_selection")
	db.Exec("DELETE FROM booking_service_group")
	db.Exec("DELETE FROM booking_detail")
	db.Exec("DELETE FROM booking")
	db.Exec("DELETE FROM customer")
	db.Exec("DELETE FROM service")
	db.Exec("DELETE FROM space")
	db.Exec("DELETE FROM space_type")

	ctx := context.Background()
	spaces := repository.NewSpaceRepository(db)
	services := repository.NewServiceRepository(db)

	log.Println("Creating space types...")
	types := []domain.SpaceType{
		{ID: 1, Name: "Chỗ ngồi linh hoạt", UnitPriceHourly: 30000},
		{ID: 2, Name: "Phòng họp 4 chỗ", UnitPriceHourly: 50000},
		{ID: 3, Name: "Văn phòng riêng", UnitPriceHourly: 80000},
	}
	for i := range types {
		if err := spaces.CreateType(ctx, &types[i]); err != nil {
			log.Fatal("seed space_type failed:", err)
		}
	}

	log.Println("Creating spaces...")
	perType := map[int64]int{1: 12, 2: 4, 3: 2}
	nextID := int64(1)
	for _, st := range types {
		for i := 0; i < perType[st.ID]; i++ {
			sp := domain.Space{ID: nextID, SpaceTypeID: st.ID}
			if err := spaces.Create(ctx, &sp); err != nil {
				log.Fatal("seed space failed:", err)
			}
			nextID++
		}
	}

	log.Println("Creating services...")
	svcRows := []domain.Service{
		{ID: 1, Name: "In ấn", Unit: "trang", UnitPrice: 2000},
		{ID: 2, Name: "Cà phê", Unit: "ly", UnitPrice: 20000},
		{ID: 3, Name: "Tủ khóa", Unit: "ngày", UnitPrice: 10000},
	}
	for i := range svcRows {
		if err := services.Create(ctx, &svcRows[i]); err != nil {
			log.Fatal("seed service failed:", err)
		}
	}

	log.Printf("Seed completed: %d space types, %d spaces, %d services", len(types), nextID-1, len(svcRows))
}
