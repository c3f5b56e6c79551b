package main

import (
	"errors"
	"etix/src/common"
	"etix/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validationErrorResponse flattens all violated constraints into one
// response so the client sees every bad field at once.
func validationErrorResponse(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return gin.H{"error": "Invalid request data", "fields": fields}
	}
	return gin.H{"error": "Invalid request data"}
}

func callerUserID(ctx *gin.Context) *uuid.UUID {
	uid := ctx.GetString("uid")
	if uid == "" {
		return nil
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil
	}
	return &parsed
}

func purchaseHandlers(g *gin.RouterGroup, proc *common.OrderProcessor) *gin.RouterGroup {
	g.
		POST("/purchase", func(ctx *gin.Context) {
			var body types.PurchaseRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, validationErrorResponse(err))
				return
			}
			eventId, err := uuid.Parse(body.EventID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "fields": []string{"EventID"}})
				return
			}
			result, err := proc.Fulfill(&common.OrderInput{
				EventID:  eventId,
				Quantity: uint(body.Quantity),
				Name:     body.Name,
				Email:    body.Email,
				UserID:   callerUserID(ctx),
			})
			if err != nil {
				if errors.Is(err, common.ErrEventNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
					return
				}
				if errors.Is(err, common.ErrInsufficientInventory) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "Not enough tickets available"})
					return
				}
				log.Printf("Purchase failed for Event [%s]: %s\n", body.EventID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process purchase"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":           true,
				"confirmation_code": result.ConfirmationCode,
				"purchase_id":       result.PurchaseID,
			})
		})
	return g
}
