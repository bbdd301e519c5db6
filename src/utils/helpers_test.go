package utils

import (
	"errors"
	"log"
	"testing"

	"rbs/src/db"
	"rbs/src/models"
	"rbs/src/types"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	d, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"))
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	if err := d.AutoMigrate(&models.Recordatorio{}, &models.Reserva{}, &models.Usuario{}); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	db.NewDB(d)
	m.Run()
}

func TestReminderLifecycle(t *testing.T) {
	params := types.CreateReminderRequestBody{
		Titulo:      "Partido",
		Descripcion: "llevar pelotas",
		Fecha:       "2024-09-23",
		Hora:        "18:30",
	}

	created, err := CreateReminder(&params)
	assert.Nil(t, err)
	assert.Greater(t, created.ID, uint(0))

	fetched, err := GetReminder(created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created, fetched)

	params.Titulo = "Partido final"
	updated, err := UpdateReminder(created.ID, &params)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Partido final", updated.Titulo)

	deleted, err := DeleteReminder(created.ID)
	assert.Nil(t, err)
	assert.Equal(t, updated, deleted)

	_, err = GetReminder(created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReservationIdsIncrease(t *testing.T) {
	params := types.CreateReservationRequestBody{
		CanchaID:    1,
		UsuarioID:   1,
		HorarioID:   1,
		Descripcion: "dobles",
		NumPersonas: 4,
	}

	first, err := CreateReservation(&params)
	assert.Nil(t, err)
	second, err := CreateReservation(&params)
	assert.Nil(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestFindUserByCredentials(t *testing.T) {
	_, err := CreateUser(&types.CreateUserRequestBody{
		Alias:      "ana",
		Contrasena: "secreta",
		Nombre:     "Ana",
		Apellido:   "Lopez",
	})
	assert.Nil(t, err)

	usuario, err := FindUserByCredentials("ana", "secreta")
	assert.Nil(t, err)
	assert.Equal(t, "Ana", usuario.Nombre)

	_, err = FindUserByCredentials("ana", "otra")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// an empty alias must not match anything
	_, err = FindUserByCredentials("", "")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
