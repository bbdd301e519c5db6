package models

type Usuario struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	Alias         string `json:"alias"`
	Contrasena    string `json:"contrasena"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	Genero        string `json:"genero"`
	Edad          int    `json:"edad"`
	Direccion     string `json:"direccion"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	Nivel         string `json:"nivel"`
	EstiloJuego   string `json:"estilo_juego"`
	FotoPerfil    string `json:"foto_perfil,omitempty"`
	TipoUsuarioID int    `json:"tipo_usuario_id"`
}
