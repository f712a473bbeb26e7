package boot

import (
	"log"

	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"
	"hms/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Customer{},
		&models.Employee{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the nightly sweep that moves confirmed bookings past
// their check-out date to completed.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateDailyCronJob(utils.CompleteElapsedBookings, 2, 0)
	if err != nil {
		log.Printf("Error scheduling booking completion job: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled booking completion job: %s\n", *id)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}
