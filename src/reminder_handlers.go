package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rbs/src/types"
	"rbs/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func reminderHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/recordatorio", func(ctx *gin.Context) {
			var body types.CreateReminderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, types.BindError(err))
				return
			}
			if ferr := body.Validate(); ferr != nil {
				ctx.JSON(http.StatusBadRequest, ferr)
				return
			}
			recordatorio, err := utils.CreateReminder(&body)
			if err != nil {
				log.Printf("Error creating recordatorio: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo crear el recordatorio"})
				return
			}
			ctx.JSON(http.StatusCreated, recordatorio)
		}).
		GET("/recordatorios", func(ctx *gin.Context) {
			recordatorios, err := utils.GetReminders()
			if err != nil {
				log.Printf("Error retrieving recordatorios: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer los recordatorios"})
				return
			}
			ctx.JSON(http.StatusOK, recordatorios)
		}).
		GET("/recordatorio/:id", func(ctx *gin.Context) {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			recordatorio, err := utils.GetReminder(uint(id))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "recordatorio no encontrado"})
					return
				}
				log.Printf("Error retrieving recordatorio %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el recordatorio"})
				return
			}
			ctx.JSON(http.StatusOK, recordatorio)
		}).
		PUT("/recordatorio/:id", func(ctx *gin.Context) {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := utils.GetReminder(uint(id)); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "recordatorio no encontrado"})
					return
				}
				log.Printf("Error retrieving recordatorio %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el recordatorio"})
				return
			}
			var body types.CreateReminderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, types.BindError(err))
				return
			}
			if ferr := body.Validate(); ferr != nil {
				ctx.JSON(http.StatusBadRequest, ferr)
				return
			}
			recordatorio, err := utils.UpdateReminder(uint(id), &body)
			if err != nil {
				log.Printf("Error updating recordatorio %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo actualizar el recordatorio"})
				return
			}
			ctx.JSON(http.StatusOK, recordatorio)
		}).
		DELETE("/recordatorio/:id", func(ctx *gin.Context) {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			recordatorio, err := utils.DeleteReminder(uint(id))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "recordatorio no encontrado"})
					return
				}
				log.Printf("Error deleting recordatorio %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo borrar el recordatorio"})
				return
			}
			ctx.JSON(http.StatusOK, recordatorio)
		})
	return g
}
