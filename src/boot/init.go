package boot

import (
	"etix/src/common"
	"etix/src/db"
	"etix/src/lib"
	"etix/src/models"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Event{},
		&models.Ticket{},
		&models.Purchase{},
		&models.UserProfile{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	j, err := sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			if _, err := common.SweepOrphanTickets(db.GetDb(), 15*time.Minute); err != nil {
				log.Printf("Orphan sweep failed: %s\n", err.Error())
			}
		}),
	)
	if err != nil {
		log.Printf("Error scheduling orphan sweep: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled orphan sweep job: %s\n", j.ID().String())
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
