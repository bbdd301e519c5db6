package types

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// FieldError names the first request field that failed validation.
type FieldError struct {
	Detail string `json:"detail"`
	Msg    string `json:"msg"`
}

var validate = validator.New()

var (
	fechaPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	horaPattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	validate.RegisterValidation("fecha", func(fl validator.FieldLevel) bool {
		return fechaPattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("hora", func(fl validator.FieldLevel) bool {
		return horaPattern.MatchString(fl.Field().String())
	})
}

// Field declaration order is the validation order: the first failing
// field is the one reported, later fields are never mentioned.
type CreateReminderRequestBody struct {
	Titulo      string `json:"titulo" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Fecha       string `json:"fecha" validate:"required,fecha"`
	Hora        string `json:"hora" validate:"required,hora"`
}

type CreateReservationRequestBody struct {
	CanchaID    int    `json:"cancha_id" validate:"required,gt=0"`
	UsuarioID   int    `json:"usuario_id" validate:"required,gt=0"`
	HorarioID   int    `json:"horario_id" validate:"required,gt=0"`
	Descripcion string `json:"descripcion" validate:"required"`
	NumPersonas int    `json:"num_personas" validate:"required,gt=0"`
}

type CreateUserRequestBody struct {
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
	FotoPerfil    string `json:"foto_perfil"`
	TipoUsuarioID int    `json:"tipo_usuario_id"`
}

// One message per field. A zero, negative or wrongly typed id all map
// to the same entry, so the caller sees one uniform error per field.
var fieldMessages = map[string]FieldError{
	"Titulo":      {Detail: "titulo", Msg: "el titulo no puede estar vacio"},
	"Descripcion": {Detail: "descripcion", Msg: "la descripcion no puede estar vacia"},
	"Fecha":       {Detail: "fecha", Msg: "la fecha debe tener formato YYYY-MM-DD"},
	"Hora":        {Detail: "hora", Msg: "la hora debe tener formato HH:MM"},
	"CanchaID":    {Detail: "cancha_id", Msg: "cancha_id debe ser un entero positivo"},
	"UsuarioID":   {Detail: "usuario_id", Msg: "usuario_id debe ser un entero positivo"},
	"HorarioID":   {Detail: "horario_id", Msg: "horario_id debe ser un entero positivo"},
	"NumPersonas": {Detail: "num_personas", Msg: "num_personas debe ser un entero positivo"},
}

func firstFieldError(err error) *FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if fe, ok := fieldMessages[verrs[0].StructField()]; ok {
			return &fe
		}
		return &FieldError{Detail: verrs[0].StructField(), Msg: "campo invalido"}
	}
	return &FieldError{Detail: "body", Msg: "cuerpo de la peticion invalido"}
}

func (b CreateReminderRequestBody) Validate() *FieldError {
	if err := validate.Struct(b); err != nil {
		return firstFieldError(err)
	}
	return nil
}

func (b CreateReservationRequestBody) Validate() *FieldError {
	if err := validate.Struct(b); err != nil {
		return firstFieldError(err)
	}
	return nil
}

// BindError maps a JSON decode failure onto the same FieldError the
// validator reports for that field, so a string where an int belongs
// is indistinguishable from a zero or negative value.
func BindError(err error) *FieldError {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		for _, fe := range fieldMessages {
			if fe.Detail == ute.Field {
				fe := fe
				return &fe
			}
		}
	}
	return &FieldError{Detail: "body", Msg: "cuerpo de la peticion invalido"}
}
