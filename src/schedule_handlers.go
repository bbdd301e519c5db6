package main

import (
	"log"
	"net/http"
	"strconv"

	"rbs/src/lib"
	"rbs/src/utils"

	"github.com/gin-gonic/gin"
)

type ReservaDetail struct {
	ReservaID   uint        `json:"reserva_id"`
	Descripcion string      `json:"descripcion"`
	NumPersonas int         `json:"num_personas"`
	Cancha      lib.Cancha  `json:"cancha"`
	Usuario     lib.Usuario `json:"usuario"`
}

type HorarioReserva struct {
	HorarioID int            `json:"horario_id"`
	Fecha     string         `json:"fecha"`
	Hora      string         `json:"hora"`
	Reserva   *ReservaDetail `json:"reserva"`
}

// scheduleHandlers serves the join of local reservations against the
// time slot, court and user collections held by the upstream services.
func scheduleHandlers(g *gin.RouterGroup, upstream *lib.Upstream) *gin.RouterGroup {
	g.GET("/horariosreservas", func(ctx *gin.Context) {
		var filter *int
		if raw := ctx.Query("horario_id"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "horario_id debe ser un entero"})
				return
			}
			filter = &v
		}

		horarios, err := upstream.FetchHorarios()
		if err != nil {
			log.Printf("Error fetching horarios: %s\n", err.Error())
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no se pudieron obtener los horarios"})
			return
		}
		canchas, err := upstream.FetchCanchas()
		if err != nil {
			log.Printf("Error fetching canchas: %s\n", err.Error())
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no se pudieron obtener las canchas"})
			return
		}
		usuarios := upstream.FetchUsuarios()

		canchasByID := make(map[int]lib.Cancha, len(canchas))
		for _, c := range canchas {
			canchasByID[c.CanchaID] = c
		}
		usuariosByID := make(map[int]lib.Usuario, len(usuarios))
		for _, u := range usuarios {
			usuariosByID[u.UsuarioID] = u
		}

		reservas, err := utils.GetReservations()
		if err != nil {
			log.Printf("Error retrieving reservas: %s\n", err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer las reservas"})
			return
		}

		result := make([]HorarioReserva, 0, len(horarios))
		for _, h := range horarios {
			if filter != nil && h.HorarioID != *filter {
				continue
			}
			item := HorarioReserva{HorarioID: h.HorarioID, Fecha: h.Fecha, Hora: h.Hora}
			// First reservation on the slot wins; nothing prevents a
			// second one from existing, it just never surfaces here.
			for _, r := range reservas {
				if r.HorarioID == h.HorarioID {
					item.Reserva = &ReservaDetail{
						ReservaID:   r.ID,
						Descripcion: r.Descripcion,
						NumPersonas: r.NumPersonas,
						Cancha:      canchasByID[r.CanchaID],
						Usuario:     usuariosByID[r.UsuarioID],
					}
					break
				}
			}
			result = append(result, item)
		}

		if filter != nil && len(result) == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "horario no encontrado"})
			return
		}
		ctx.JSON(http.StatusOK, result)
	})
	return g
}
