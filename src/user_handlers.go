package main

import (
	"errors"
	"log"
	"net/http"

	"rbs/src/types"
	"rbs/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/usuario", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			usuario, err := utils.CreateUser(&body)
			if err != nil {
				log.Printf("Error creating usuario: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo crear el usuario"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Usuario creado con exito", "id": usuario.ID})
		}).
		GET("/usuarios", func(ctx *gin.Context) {
			usuarios, err := utils.GetUsers()
			if err != nil {
				log.Printf("Error retrieving usuarios: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer los usuarios"})
				return
			}
			ctx.JSON(http.StatusOK, usuarios)
		}).
		GET("/usuario", func(ctx *gin.Context) {
			alias := ctx.Query("alias")
			contrasena := ctx.Query("contrasena")
			usuario, err := utils.FindUserByCredentials(alias, contrasena)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "usuario no encontrado"})
					return
				}
				log.Printf("Error retrieving usuario %s: %s\n", alias, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el usuario"})
				return
			}
			ctx.JSON(http.StatusOK, usuario)
		})
	return g
}
