package main

import (
	"errors"
	"etix/src/db"
	"etix/src/models"
	"etix/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func profileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/purchases", func(ctx *gin.Context) {
			userId := ctx.GetString("uid")
			var purchases []models.Purchase
			db := db.GetDb()
			if err := db.
				Model(&models.Purchase{}).
				Where("user_id = ?", userId).
				Preload("Event").
				Order("created_at desc").
				Find(&purchases).
				Error; err != nil {
				log.Printf("Error retrieving Purchases for user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchases"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": purchases, "count": len(purchases)})
		}).
		GET("/profiles/me", func(ctx *gin.Context) {
			userId := ctx.GetString("uid")
			var profile models.UserProfile
			db := db.GetDb()
			if err := db.
				Where("id = ?", userId).
				First(&profile).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
					return
				}
				log.Printf("Error retrieving profile [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": profile})
		}).
		PUT("/profiles/me", func(ctx *gin.Context) {
			var body types.UpdateProfileRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, validationErrorResponse(err))
				return
			}
			userId, err := uuid.Parse(ctx.GetString("uid"))
			if err != nil {
				ctx.Status(http.StatusUnauthorized)
				return
			}
			profile := models.UserProfile{
				ID:                 userId,
				FullName:           body.FullName,
				Phone:              body.Phone,
				DateOfBirth:        body.DateOfBirth,
				AddressLine1:       body.AddressLine1,
				AddressLine2:       body.AddressLine2,
				City:               body.City,
				PostalCode:         body.PostalCode,
				Country:            body.Country,
				EmailNotifications: body.EmailNotifications,
				SMSNotifications:   body.SMSNotifications,
			}
			db := db.GetDb()
			if err := db.
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					UpdateAll: true,
				}).
				Create(&profile).
				Error; err != nil {
				log.Printf("Error saving profile [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": profile})
		})
	return g
}
