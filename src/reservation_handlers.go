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

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/reserva", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, types.BindError(err))
				return
			}
			if ferr := body.Validate(); ferr != nil {
				ctx.JSON(http.StatusBadRequest, ferr)
				return
			}
			reserva, err := utils.CreateReservation(&body)
			if err != nil {
				log.Printf("Error creating reserva: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo crear la reserva"})
				return
			}
			ctx.JSON(http.StatusCreated, reserva)
		}).
		GET("/reservas", func(ctx *gin.Context) {
			reservas, err := utils.GetReservations()
			if err != nil {
				log.Printf("Error retrieving reservas: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer las reservas"})
				return
			}
			ctx.JSON(http.StatusOK, reservas)
		}).
		GET("/reserva/:id", func(ctx *gin.Context) {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reserva, err := utils.GetReservation(uint(id))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reserva no encontrada"})
					return
				}
				log.Printf("Error retrieving reserva %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer la reserva"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reserva})
		}).
		PUT("/reserva/:id", func(ctx *gin.Context) {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if _, err := utils.GetReservation(uint(id)); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reserva no encontrada"})
					return
				}
				log.Printf("Error retrieving reserva %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer la reserva"})
				return
			}
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, types.BindError(err))
				return
			}
			if ferr := body.Validate(); ferr != nil {
				ctx.JSON(http.StatusBadRequest, ferr)
				return
			}
			reserva, err := utils.UpdateReservation(uint(id), &body)
			if err != nil {
				log.Printf("Error updating reserva %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo actualizar la reserva"})
				return
			}
			ctx.JSON(http.StatusOK, reserva)
		}).
		DELETE("/reserva/:id", func(ctx *gin.Context) {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			reserva, err := utils.DeleteReservation(uint(id))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "reserva no encontrada"})
					return
				}
				log.Printf("Error deleting reserva %d: %s\n", id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo borrar la reserva"})
				return
			}
			ctx.JSON(http.StatusOK, reserva)
		})
	return g
}
