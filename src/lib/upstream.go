package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Horario is a time slot owned by the scheduling service. Slots are
// never persisted locally.
type Horario struct {
	HorarioID int    `json:"horario_id"`
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
}

type Cancha struct {
	CanchaID  int    `json:"cancha_id"`
	Nombre    string `json:"nombre"`
	Ubicacion string `json:"ubicacion"`
}

type Usuario struct {
	UsuarioID int    `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
}

// UpstreamError carries the non-2xx status and raw body of a failed
// upstream call. No retry is attempted.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

type Upstream struct {
	BaseURL string
	Client  *http.Client
}

func NewUpstream(baseURL string) *Upstream {
	return &Upstream{BaseURL: baseURL, Client: &http.Client{}}
}

func (u *Upstream) fetch(resource string, out any) error {
	req, err := http.NewRequest(http.MethodGet, u.BaseURL+resource, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	res, err := u.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &UpstreamError{Status: res.StatusCode, Body: string(body)}
	}
	return json.Unmarshal(body, out)
}

func (u *Upstream) FetchHorarios() ([]Horario, error) {
	var horarios []Horario
	if err := u.fetch("/horarios", &horarios); err != nil {
		return nil, err
	}
	return horarios, nil
}

func (u *Upstream) FetchCanchas() ([]Cancha, error) {
	var canchas []Cancha
	if err := u.fetch("/canchas", &canchas); err != nil {
		return nil, err
	}
	return canchas, nil
}

// Minimal stand-in list used when the user service does not answer.
var fallbackUsuarios = []Usuario{
	{UsuarioID: 1, Nombre: "Juan", Apellido: "Perez"},
	{UsuarioID: 2, Nombre: "Maria", Apellido: "Gomez"},
}

// FetchUsuarios never fails: a fetch error is logged and the fallback
// list is returned instead.
func (u *Upstream) FetchUsuarios() []Usuario {
	var usuarios []Usuario
	if err := u.fetch("/usuarios", &usuarios); err != nil {
		log.Printf("Error fetching usuarios: %s\n", err.Error())
		return fallbackUsuarios
	}
	return usuarios
}
