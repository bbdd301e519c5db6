package models

// Reserva references court, user and time slot records held by the
// upstream services. The ids are validated as positive integers only;
// existence is never checked against the remote collections.
type Reserva struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	CanchaID    int    `json:"cancha_id"`
	UsuarioID   int    `json:"usuario_id"`
	HorarioID   int    `json:"horario_id"`
	Descripcion string `json:"descripcion"`
	NumPersonas int    `json:"num_personas"`
}
