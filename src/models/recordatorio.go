package models

type Recordatorio struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
}
