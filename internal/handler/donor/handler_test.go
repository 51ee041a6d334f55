package donor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository/mocks"
	donorsvc "github.com/jwalitptl/doacao-api/internal/service/donor"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
	"github.com/jwalitptl/doacao-api/pkg/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupRouter(repo *mocks.DonorRepository) *gin.Engine {
	r := gin.New()
	NewHandler(donorsvc.NewService(repo)).RegisterRoutes(r.Group("/api"), nil)
	return r
}

func doRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validDonor() map[string]interface{} {
	return map[string]interface{}{
		"nome_completo":   "Ana Souza",
		"cpf":             "123.456.789-00",
		"data_nascimento": "1990-05-17",
		"sexo":            "F",
		"tipo_sanguineo":  "O+",
		"email":           "ana@x.com",
		"cidade":          "São Paulo",
	}
}

func TestCreateDonor(t *testing.T) {
	repo := new(mocks.DonorRepository)
	r := setupRouter(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Donor) bool {
		return d.CPF == "123.456.789-00" && d.AptoDoar && d.DataNascimento.String() == "1990-05-17" &&
			d.Cidade != nil && *d.Cidade == "São Paulo" && d.Telefone == nil
	})).Return(int64(1), nil)

	w := doRequest(r, http.MethodPost, "/api/doadores", validDonor())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Doador cadastrado com sucesso!","id_doador":1}`, w.Body.String())
	repo.AssertExpectations(t)
}

func TestCreateDonorValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]interface{})
		wantMsg string
	}{
		{"missing cpf", func(b map[string]interface{}) { delete(b, "cpf") }, validator.MsgRequiredFields},
		{"empty name", func(b map[string]interface{}) { b["nome_completo"] = "" }, validator.MsgRequiredFields},
		{"bad blood type", func(b map[string]interface{}) { b["tipo_sanguineo"] = "C+" }, "Campos inválidos: tipo_sanguineo"},
		{"bad sex", func(b map[string]interface{}) { b["sexo"] = "X" }, "Campos inválidos: sexo"},
		{"bad date", func(b map[string]interface{}) { b["data_nascimento"] = "17/05/1990" }, "Campos inválidos: data_nascimento"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.DonorRepository)
			r := setupRouter(repo)

			body := validDonor()
			tt.mutate(body)
			w := doRequest(r, http.MethodPost, "/api/doadores", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), w.Body.String())
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateDonorDuplicate(t *testing.T) {
	repo := new(mocks.DonorRepository)
	r := setupRouter(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), fmt.Errorf("x: %w", apperrors.ErrDuplicate))

	w := doRequest(r, http.MethodPost, "/api/doadores", validDonor())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"CPF ou E-mail já cadastrado"}`, w.Body.String())
}

func TestGetDonor(t *testing.T) {
	repo := new(mocks.DonorRepository)
	r := setupRouter(repo)
	repo.On("Get", mock.Anything, int64(1)).Return(&model.Donor{ID: 1, NomeCompleto: "Ana", DataNascimento: model.NewDate(1990, 5, 17)}, nil)
	repo.On("Get", mock.Anything, int64(2)).Return(nil, apperrors.ErrNotFound)

	w := doRequest(r, http.MethodGet, "/api/doadores/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ana", got["nome_completo"])
	assert.Equal(t, "1990-05-17", got["data_nascimento"])

	w = doRequest(r, http.MethodGet, "/api/doadores/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Doador não encontrado"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/doadores/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Doador não encontrado"}`, w.Body.String())
}

func TestListDonors(t *testing.T) {
	repo := new(mocks.DonorRepository)
	r := setupRouter(repo)
	repo.On("List", mock.Anything).Return([]*model.Donor{}, nil).Once()
	repo.On("List", mock.Anything).Return(nil, errors.New("dial tcp")).Once()

	w := doRequest(r, http.MethodGet, "/api/doadores", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/doadores", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro ao buscar doadores"}`, w.Body.String())
}

func TestUpdateDonor(t *testing.T) {
	repo := new(mocks.DonorRepository)
	r := setupRouter(repo)

	body := validDonor()
	delete(body, "cpf")
	body["apto_doar"] = false

	repo.On("Update", mock.Anything, mock.MatchedBy(func(d *model.Donor) bool {
		return d.ID == 4 && !d.AptoDoar
	})).Return(nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(d *model.Donor) bool {
		return d.ID == 5
	})).Return(apperrors.ErrNotFound)

	w := doRequest(r, http.MethodPut, "/api/doadores/4", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Doador atualizado com sucesso!"}`, w.Body.String())

	w = doRequest(r, http.MethodPut, "/api/doadores/5", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	delete(body, "apto_doar")
	w = doRequest(r, http.MethodPut, "/api/doadores/4", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Campos obrigatórios não preenchidos"}`, w.Body.String())
}

func TestDeleteDonor(t *testing.T) {
	repo := new(mocks.DonorRepository)
	r := setupRouter(repo)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(apperrors.ErrNotFound)
	repo.On("Delete", mock.Anything, int64(3)).Return(errors.New("violates foreign key constraint"))

	w := doRequest(r, http.MethodDelete, "/api/doadores/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Doador deletado com sucesso!"}`, w.Body.String())

	w = doRequest(r, http.MethodDelete, "/api/doadores/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/doadores/3", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro ao deletar doador"}`, w.Body.String())
}
