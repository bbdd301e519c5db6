package utils

import (
	"rbs/src/db"
	"rbs/src/models"
	"rbs/src/types"
)

func CreateReminder(params *types.CreateReminderRequestBody) (models.Recordatorio, error) {
	recordatorio := models.Recordatorio{
		Titulo:      params.Titulo,
		Descripcion: params.Descripcion,
		Fecha:       params.Fecha,
		Hora:        params.Hora,
	}
	db := db.GetDb()
	err := db.Create(&recordatorio).Error
	return recordatorio, err
}

func GetReminders() ([]models.Recordatorio, error) {
	recordatorios := make([]models.Recordatorio, 0)
	db := db.GetDb()
	err := db.Order("id").Find(&recordatorios).Error
	return recordatorios, err
}

func GetReminder(id uint) (models.Recordatorio, error) {
	var recordatorio models.Recordatorio
	db := db.GetDb()
	err := db.First(&recordatorio, id).Error
	return recordatorio, err
}

func UpdateReminder(id uint, params *types.CreateReminderRequestBody) (models.Recordatorio, error) {
	var recordatorio models.Recordatorio
	db := db.GetDb()
	if err := db.First(&recordatorio, id).Error; err != nil {
		return recordatorio, err
	}
	recordatorio.Titulo = params.Titulo
	recordatorio.Descripcion = params.Descripcion
	recordatorio.Fecha = params.Fecha
	recordatorio.Hora = params.Hora
	err := db.Save(&recordatorio).Error
	return recordatorio, err
}

// DeleteReminder returns the row as it stood before removal.
func DeleteReminder(id uint) (models.Recordatorio, error) {
	var recordatorio models.Recordatorio
	db := db.GetDb()
	if err := db.First(&recordatorio, id).Error; err != nil {
		return recordatorio, err
	}
	err := db.Delete(&models.Recordatorio{}, id).Error
	return recordatorio, err
}

func CreateReservation(params *types.CreateReservationRequestBody) (models.Reserva, error) {
	reserva := models.Reserva{
		CanchaID:    params.CanchaID,
		UsuarioID:   params.UsuarioID,
		HorarioID:   params.HorarioID,
		Descripcion: params.Descripcion,
		NumPersonas: params.NumPersonas,
	}
	db := db.GetDb()
	err := db.Create(&reserva).Error
	return reserva, err
}

func GetReservations() ([]models.Reserva, error) {
	reservas := make([]models.Reserva, 0)
	db := db.GetDb()
	err := db.Order("id").Find(&reservas).Error
	return reservas, err
}

func GetReservation(id uint) (models.Reserva, error) {
	var reserva models.Reserva
	db := db.GetDb()
	err := db.First(&reserva, id).Error
	return reserva, err
}

func UpdateReservation(id uint, params *types.CreateReservationRequestBody) (models.Reserva, error) {
	var reserva models.Reserva
	db := db.GetDb()
	if err := db.First(&reserva, id).Error; err != nil {
		return reserva, err
	}
	reserva.CanchaID = params.CanchaID
	reserva.UsuarioID = params.UsuarioID
	reserva.HorarioID = params.HorarioID
	reserva.Descripcion = params.Descripcion
	reserva.NumPersonas = params.NumPersonas
	err := db.Save(&reserva).Error
	return reserva, err
}

func DeleteReservation(id uint) (models.Reserva, error) {
	var reserva models.Reserva
	db := db.GetDb()
	if err := db.First(&reserva, id).Error; err != nil {
		return reserva, err
	}
	err := db.Delete(&models.Reserva{}, id).Error
	return reserva, err
}

func CreateUser(params *types.CreateUserRequestBody) (models.Usuario, error) {
	usuario := models.Usuario{
		Alias:         params.Alias,
		Contrasena:    params.Contrasena,
		Nombre:        params.Nombre,
		Apellido:      params.Apellido,
		Genero:        params.Genero,
		Edad:          params.Edad,
		Direccion:     params.Direccion,
		Email:         params.Email,
		Telefono:      params.Telefono,
		Nivel:         params.Nivel,
		EstiloJuego:   params.EstiloJuego,
		FotoPerfil:    params.FotoPerfil,
		TipoUsuarioID: params.TipoUsuarioID,
	}
	db := db.GetDb()
	err := db.Create(&usuario).Error
	return usuario, err
}

func GetUsers() ([]models.Usuario, error) {
	usuarios := make([]models.Usuario, 0)
	db := db.GetDb()
	err := db.Order("id").Find(&usuarios).Error
	return usuarios, err
}

// FindUserByCredentials compares the stored password as plain text,
// matching the behavior of the original service.
func FindUserByCredentials(alias string, contrasena string) (models.Usuario, error) {
	var usuario models.Usuario
	db := db.GetDb()
	err := db.Where("alias = ? AND contrasena = ?", alias, contrasena).First(&usuario).Error
	return usuario, err
}
