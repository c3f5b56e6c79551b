package main

import (
	"context"
	"encoding/json"
	"errors"
	"etix/src/db"
	"etix/src/lib"
	"etix/src/models"
	"etix/src/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const eventsCacheKey = "events:upcoming"

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			var query struct {
				Q string `form:"q"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if query.Q == "" {
				if rd := lib.GetRedisClient(); rd != nil {
					if val := rd.Get(context.Background(), eventsCacheKey).Val(); val != "" {
						var cached []models.Event
						if err := json.Unmarshal([]byte(val), &cached); err == nil {
							ctx.JSON(http.StatusOK, gin.H{"data": cached, "count": len(cached)})
							return
						}
						log.Printf("Discarding unreadable cache entry [%s]\n", eventsCacheKey)
					}
				}
			}
			var events []models.Event
			db := db.GetDb()
			q := db.
				Model(&models.Event{}).
				Where("date >= ?", time.Now()).
				Order("date asc")
			if query.Q != "" {
				pattern := "%" + query.Q + "%"
				q = q.Where("title ILIKE ? OR location ILIKE ?", pattern, pattern)
			}
			if err := q.Find(&events).Error; err != nil {
				log.Printf("Error retrieving Events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
				return
			}
			if query.Q == "" {
				if rd := lib.GetRedisClient(); rd != nil {
					if b, err := json.Marshal(&events); err == nil {
						rd.SetEx(context.Background(), eventsCacheKey, string(b), time.Minute)
					}
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.EventURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var event models.Event
			db := db.GetDb()
			if err := db.
				Where("id = ?", params.ID).
				First(&event).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				log.Printf("Error retrieving Event [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		})
	return g
}
