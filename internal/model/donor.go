package model

import "time"

type Donor struct {
	ID             int64     `db:"id_doador" json:"id_doador"`
	NomeCompleto   string    `db:"nome_completo" json:"nome_completo"`
	CPF            string    `db:"cpf" json:"cpf"`
	DataNascimento Date      `db:"data_nascimento" json:"data_nascimento"`
	Sexo           Sex       `db:"sexo" json:"sexo"`
	TipoSanguineo  BloodType `db:"tipo_sanguineo" json:"tipo_sanguineo"`
	Email          string    `db:"email" json:"email"`
	Telefone       *string   `db:"telefone" json:"telefone"`
	Endereco       *string   `db:"endereco" json:"endereco"`
	Cidade         *string   `db:"cidade" json:"cidade"`
	Estado         *string   `db:"estado" json:"estado"`
	CEP            *string   `db:"cep" json:"cep"`
	AptoDoar       bool      `db:"apto_doar" json:"apto_doar"`
	DataCadastro   time.Time `db:"data_cadastro" json:"data_cadastro"`
}

// CreateDonorRequest is the registration form payload.
type CreateDonorRequest struct {
	NomeCompleto   string  `json:"nome_completo" binding:"required"`
	CPF            string  `json:"cpf" binding:"required"`
	DataNascimento string  `json:"data_nascimento" binding:"required,iso_date"`
	Sexo           string  `json:"sexo" binding:"required,donor_sex"`
	TipoSanguineo  string  `json:"tipo_sanguineo" binding:"required,blood_type"`
	Email          string  `json:"email" binding:"required"`
	Telefone       *string `json:"telefone"`
	Endereco       *string `json:"endereco"`
	Cidade         *string `json:"cidade"`
	Estado         *string `json:"estado"`
	CEP            *string `json:"cep"`
}

func (r *CreateDonorRequest) ToDonor() (*Donor, error) {
	birth, err := ParseDate(r.DataNascimento)
	if err != nil {
		return nil, err
	}
	return &Donor{
		NomeCompleto:   r.NomeCompleto,
		CPF:            r.CPF,
		DataNascimento: birth,
		Sexo:           Sex(r.Sexo),
		TipoSanguineo:  BloodType(r.TipoSanguineo),
		Email:          r.Email,
		Telefone:       r.Telefone,
		Endereco:       r.Endereco,
		Cidade:         r.Cidade,
		Estado:         r.Estado,
		CEP:            r.CEP,
		AptoDoar:       true,
	}, nil
}

// UpdateDonorRequest replaces every mutable field of a donor. The tax id is
// fixed at registration.
type UpdateDonorRequest struct {
	NomeCompleto   string  `json:"nome_completo" binding:"required"`
	DataNascimento string  `json:"data_nascimento" binding:"required,iso_date"`
	Sexo           string  `json:"sexo" binding:"required,donor_sex"`
	TipoSanguineo  string  `json:"tipo_sanguineo" binding:"required,blood_type"`
	Email          string  `json:"email" binding:"required"`
	Telefone       *string `json:"telefone"`
	Endereco       *string `json:"endereco"`
	Cidade         *string `json:"cidade"`
	Estado         *string `json:"estado"`
	CEP            *string `json:"cep"`
	AptoDoar       *bool   `json:"apto_doar" binding:"required"`
}

func (r *UpdateDonorRequest) ToDonor(id int64) (*Donor, error) {
	birth, err := ParseDate(r.DataNascimento)
	if err != nil {
		return nil, err
	}
	return &Donor{
		ID:             id,
		NomeCompleto:   r.NomeCompleto,
		DataNascimento: birth,
		Sexo:           Sex(r.Sexo),
		TipoSanguineo:  BloodType(r.TipoSanguineo),
		Email:          r.Email,
		Telefone:       r.Telefone,
		Endereco:       r.Endereco,
		Cidade:         r.Cidade,
		Estado:         r.Estado,
		CEP:            r.CEP,
		AptoDoar:       *r.AptoDoar,
	}, nil
}

type CreateDonorResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id_doador"`
}
