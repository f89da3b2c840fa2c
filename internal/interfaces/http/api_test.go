package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionario-api/internal/application/auth"
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/application/usecase"
	"github.com/jhoicas/Concesionario-api/internal/domain"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Concesionario-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Concesionario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Comparten el mapa de dealers para que el repo de cars
// pueda adjuntar el dealer igual que el adaptador de postgres (LEFT JOIN).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	dealers      map[int64]*entity.Dealer
	cars         map[int64]*entity.Car
	creds        map[string]*entity.UserCredential
	nextDealerID int64
	nextCarID    int64
}

func newMemStore() *memStore {
	return &memStore{
		dealers: make(map[int64]*entity.Dealer),
		cars:    make(map[int64]*entity.Car),
		creds:   make(map[string]*entity.UserCredential),
	}
}

type memCarRepo struct{ s *memStore }

func (r *memCarRepo) FindByID(id int64) (*entity.Car, error) {
	c, ok := r.s.cars[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	if cp.DealerID != nil {
		if d, ok := r.s.dealers[*cp.DealerID]; ok {
			dc := *d
			cp.Dealer = &dc
		}
	}
	return &cp, nil
}

func (r *memCarRepo) FindAll() ([]*entity.Car, error) {
	ids := make([]int64, 0, len(r.s.cars))
	for id := range r.s.cars {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Car, 0, len(ids))
	for _, id := range ids {
		c, _ := r.FindByID(id)
		out = append(out, c)
	}
	return out, nil
}

func (r *memCarRepo) Save(car *entity.Car) error {
	if car.ID == 0 {
		r.s.nextCarID++
		car.ID = r.s.nextCarID
	}
	cp := *car
	cp.Dealer = nil
	r.s.cars[cp.ID] = &cp
	return nil
}

func (r *memCarRepo) DeleteByID(id int64) error {
	delete(r.s.cars, id)
	return nil
}

type memDealerRepo struct{ s *memStore }

func (r *memDealerRepo) FindByID(id int64) (*entity.Dealer, error) {
	d, ok := r.s.dealers[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDealerRepo) FindAll() ([]*entity.Dealer, error) {
	ids := make([]int64, 0, len(r.s.dealers))
	for id := range r.s.dealers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Dealer, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.dealers[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memDealerRepo) Save(dealer *entity.Dealer) error {
	if dealer.ID == 0 {
		r.s.nextDealerID++
		dealer.ID = r.s.nextDealerID
	}
	cp := *dealer
	r.s.dealers[cp.ID] = &cp
	return nil
}

func (r *memDealerRepo) DeleteByID(id int64) error {
	delete(r.s.dealers, id)
	for carID, c := range r.s.cars {
		if c.DealerID != nil && *c.DealerID == id {
			delete(r.s.cars, carID)
		}
	}
	return nil
}

type memCredRepo struct{ s *memStore }

func (r *memCredRepo) FindByUsername(username string) (*entity.UserCredential, error) {
	c, ok := r.s.creds[username]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCredRepo) Create(cred *entity.UserCredential) error {
	if _, ok := r.s.creds[cred.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *cred
	r.s.creds[cp.Username] = &cp
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de la aplicación: mismo wiring que main, con repos en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func newTestAPI(securityEnforced bool) *fiber.App {
	store := newMemStore()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		CarUC:    usecase.NewCarUseCase(&memCarRepo{s: store}),
		DealerUC: usecase.NewDealerUseCase(&memDealerRepo{s: store}),
		AuthUC: auth.NewAuthUseCase(&memCredRepo{s: store}, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
		}),
		JWTSecret:        testJWTSecret,
		SecurityEnforced: securityEnforced,
	})
	return app
}

// doJSON lanza una petición con body JSON opcional y header Authorization opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func createDealer(t *testing.T, app *fiber.App, name string) dto.DealerResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/dealers/create", map[string]string{"name": name}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, "el dealer debe crearse con 201")
	var d dto.DealerResponse
	decodeJSON(t, resp, &d)
	require.NotZero(t, d.ID)
	return d
}

func camryRequest(dealerID int64) dto.CarRequest {
	return dto.CarRequest{
		Brand:     "Toyota",
		Model:     "Camry",
		Color:     "red",
		RegNumber: "123ABC",
		ImageURL:  "https://example.com/camry.jpg",
		Year:      2025,
		Price:     decimal.NewFromInt(35000),
		DealerID:  &dealerID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo end-to-end: dealer → car → listado
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoDealerCarListado(t *testing.T) {
	app := newTestAPI(false)

	dealer := createDealer(t, app, "Toyota Dealership")

	resp := doJSON(t, app, http.MethodPost, "/api/cars/", camryRequest(dealer.ID), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CarResponse
	decodeJSON(t, resp, &created)
	assert.NotZero(t, created.ID, "el car creado debe tener id asignado")
	assert.Equal(t, "Toyota", created.Brand)
	require.NotNil(t, created.Dealer, "la respuesta debe incluir el dealer asociado")
	assert.Equal(t, "Toyota Dealership", created.Dealer.Name)

	resp = doJSON(t, app, http.MethodGet, "/api/cars/all", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []dto.CarResponse
	decodeJSON(t, resp, &all)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "Camry", all[0].Model)
	assert.True(t, decimal.NewFromInt(35000).Equal(all[0].Price))
	require.NotNil(t, all[0].Dealer)
	assert.Equal(t, dealer.ID, all[0].Dealer.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuerpo de error y códigos HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CarAnteriorA1908_Retorna400(t *testing.T) {
	app := newTestAPI(false)

	req := camryRequest(0)
	req.DealerID = nil
	req.Year = 1907
	resp := doJSON(t, app, http.MethodPost, "/api/cars/", req, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, "Cars weren't invented till 1908 anything before is unknown", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "/api/cars/", apiErr.Path)
	assert.False(t, apiErr.Timestamp.IsZero(), "el error debe llevar timestamp")
}

func TestAPI_CarNoExiste_Retorna404(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodGet, "/api/cars/150", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, "Car with id of 150 is not found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/api/cars/150", apiErr.Path)
}

func TestAPI_IDNoNumerico_Retorna400(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodGet, "/api/cars/abc", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y Delete de cars vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// El PUT reemplaza la fila completa: los campos ausentes del payload quedan
// en su valor cero, incluida la asociación al dealer.
func TestAPI_UpdateCar_ReemplazaFilaCompleta(t *testing.T) {
	app := newTestAPI(false)
	dealer := createDealer(t, app, "Toyota Dealership")

	resp := doJSON(t, app, http.MethodPost, "/api/cars/", camryRequest(dealer.ID), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CarResponse
	decodeJSON(t, resp, &created)

	partial := map[string]interface{}{"brand": "Honda", "year": 2020, "price": 20000}
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/cars/%d", created.ID), partial, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.CarResponse
	decodeJSON(t, resp, &updated)
	assert.Equal(t, created.ID, updated.ID, "el id de la ruta manda sobre el payload")
	assert.Equal(t, "Honda", updated.Brand)
	assert.Equal(t, 2020, updated.Year)
	assert.Empty(t, updated.Model, "el model ausente se sobreescribe con cero")
	assert.Empty(t, updated.RegNumber)
	assert.Nil(t, updated.Dealer, "el dealer ausente del payload se desasocia")
}

func TestAPI_UpdateCarNoExiste_Retorna404(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodPut, "/api/cars/77", camryRequest(0), "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, "Car with id of 77 is not found", apiErr.Message)
}

func TestAPI_DeleteCar(t *testing.T) {
	app := newTestAPI(false)
	dealer := createDealer(t, app, "Toyota Dealership")

	resp := doJSON(t, app, http.MethodPost, "/api/cars/", camryRequest(dealer.ID), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CarResponse
	decodeJSON(t, resp, &created)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/cars/%d", created.ID), nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/cars/%d", created.ID), nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_DeleteCarNoExiste_Retorna404(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodDelete, "/api/cars/999", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de dealers
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DealerUpdateMezclaNombre(t *testing.T) {
	app := newTestAPI(false)
	dealer := createDealer(t, app, "Toyota Dealership")

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/dealers/update/%d", dealer.ID),
		map[string]string{"name": "Volvo Dealership"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.DealerResponse
	decodeJSON(t, resp, &updated)
	assert.Equal(t, dealer.ID, updated.ID)
	assert.Equal(t, "Volvo Dealership", updated.Name)
}

func TestAPI_DealerDelete(t *testing.T) {
	app := newTestAPI(false)
	dealer := createDealer(t, app, "Toyota Dealership")

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/dealers/delete/%d", dealer.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Dealer deleted with ID %d", dealer.ID), readBody(t, resp))

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/dealers/delete/%d", dealer.ID), nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, fmt.Sprintf("Dealer with id of %d is not found", dealer.ID), apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Home
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Home(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodGet, "/api/cars/home", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Welcome to Car Dealer!", readBody(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegistroYLogin(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodPost, "/api/users/",
		dto.RegisterRequest{Username: "Carlos", Password: "secreto123", Role: "dealer"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decodeJSON(t, resp, &user)
	assert.Equal(t, "carlos", user.Username, "el username se normaliza a minúsculas")
	assert.Equal(t, "DEALER", user.Role, "el rol se normaliza a mayúsculas")

	// Duplicado (sin distinguir mayúsculas)
	resp = doJSON(t, app, http.MethodPost, "/api/users/",
		dto.RegisterRequest{Username: "CARLOS", Password: "otra", Role: "USER"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, "Username has been taken, Please choose another!", apiErr.Message)

	// Login correcto: token en texto plano, validable con el mismo secreto
	resp = doJSON(t, app, http.MethodPost, "/api/users/login",
		dto.LoginRequest{Username: "Carlos", Password: "secreto123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := readBody(t, resp)
	require.NotEmpty(t, token)
	assert.True(t, pkgjwt.Validate(testJWTSecret, token, "carlos"))
	_, role, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "DEALER", role, "el token lleva el rol almacenado")
}

func TestAPI_RegistroComoAdmin_Retorna400(t *testing.T) {
	app := newTestAPI(false)

	for _, role := range []string{"ADMIN", "admin", "Admin"} {
		resp := doJSON(t, app, http.MethodPost, "/api/users/",
			dto.RegisterRequest{Username: "eva", Password: "x", Role: role}, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "rol %q", role)
		var apiErr dto.APIError
		decodeJSON(t, resp, &apiErr)
		assert.Equal(t, "User cannot be created as ADMIN, has to be USER or DEALER", apiErr.Message)
	}
}

func TestAPI_LoginPasswordIncorrecto_Retorna400(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodPost, "/api/users/",
		dto.RegisterRequest{Username: "carlos", Password: "secreto123", Role: "USER"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/users/login",
		dto.LoginRequest{Username: "carlos", Password: "equivocado"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, "Bad credentials", apiErr.Message)
}

func TestAPI_LoginUsuarioNoExiste_Retorna404(t *testing.T) {
	app := newTestAPI(false)

	resp := doJSON(t, app, http.MethodPost, "/api/users/login",
		dto.LoginRequest{Username: "bob", Password: "x"}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var apiErr dto.APIError
	decodeJSON(t, resp, &apiErr)
	assert.Equal(t, "User with username bob not found", apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seguridad aplicada: lecturas públicas, POST autenticado, PUT/DELETE por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SeguridadActiva(t *testing.T) {
	app := newTestAPI(true)

	dealerToken := tokenForRole(t, "DEALER")
	userToken := tokenForRole(t, "USER")

	// Lecturas siempre públicas
	resp := doJSON(t, app, http.MethodGet, "/api/cars/all", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el listado no requiere token")

	// POST sin token → 401
	resp = doJSON(t, app, http.MethodPost, "/api/dealers/create", map[string]string{"name": "Toyota Dealership"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// POST con cualquier token autenticado → pasa (también USER)
	resp = doJSON(t, app, http.MethodPost, "/api/dealers/create", map[string]string{"name": "Toyota Dealership"}, userToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var dealer dto.DealerResponse
	decodeJSON(t, resp, &dealer)

	resp = doJSON(t, app, http.MethodPost, "/api/cars/", camryRequest(dealer.ID), dealerToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var car dto.CarResponse
	decodeJSON(t, resp, &car)

	// PUT sin token → 401
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/cars/%d", car.ID), camryRequest(dealer.ID), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// PUT con rol USER → 403
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/cars/%d", car.ID), camryRequest(dealer.ID), userToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// PUT con rol DEALER → 200
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/cars/%d", car.ID), camryRequest(dealer.ID), dealerToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// DELETE con rol USER → 403; con DEALER → 200
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/cars/%d", car.ID), nil, userToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/cars/%d", car.ID), nil, dealerToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
