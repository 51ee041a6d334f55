package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jwalitptl/doacao-api/internal/model"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
)

const donorColumns = `
	id_doador, nome_completo, cpf, data_nascimento, sexo, tipo_sanguineo,
	email, telefone, endereco, cidade, estado, cep, apto_doar, data_cadastro`

func (r *donorRepository) List(ctx context.Context) ([]*model.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM doadores ORDER BY nome_completo`

	start := time.Now()
	donors := []*model.Donor{}
	err := r.db.SelectContext(ctx, &donors, query)
	if err = r.observe("donor_list", start, err); err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	return donors, nil
}

func (r *donorRepository) Get(ctx context.Context, id int64) (*model.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM doadores WHERE id_doador = $1`

	start := time.Now()
	var donor model.Donor
	err := r.db.GetContext(ctx, &donor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		r.observe("donor_get", start, nil)
		return nil, apperrors.ErrNotFound
	}
	if err = r.observe("donor_get", start, err); err != nil {
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	return &donor, nil
}

func (r *donorRepository) Create(ctx context.Context, donor *model.Donor) (int64, error) {
	query := `
		INSERT INTO doadores (
			nome_completo, cpf, data_nascimento, sexo, tipo_sanguineo,
			email, telefone, endereco, cidade, estado, cep, apto_doar
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id_doador
	`
	start := time.Now()
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		donor.NomeCompleto,
		donor.CPF,
		donor.DataNascimento,
		donor.Sexo,
		donor.TipoSanguineo,
		donor.Email,
		donor.Telefone,
		donor.Endereco,
		donor.Cidade,
		donor.Estado,
		donor.CEP,
		donor.AptoDoar,
	).Scan(&id)
	if err = r.observe("donor_create", start, err); err != nil {
		return 0, fmt.Errorf("failed to create donor: %w", err)
	}
	donor.ID = id
	return id, nil
}

// Update overwrites every mutable column. The tax id and registration time are kept.
func (r *donorRepository) Update(ctx context.Context, donor *model.Donor) error {
	query := `
		UPDATE doadores
		SET nome_completo = $1, data_nascimento = $2, sexo = $3, tipo_sanguineo = $4,
			email = $5, telefone = $6, endereco = $7, cidade = $8, estado = $9,
			cep = $10, apto_doar = $11
		WHERE id_doador = $12
	`
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		donor.NomeCompleto,
		donor.DataNascimento,
		donor.Sexo,
		donor.TipoSanguineo,
		donor.Email,
		donor.Telefone,
		donor.Endereco,
		donor.Cidade,
		donor.Estado,
		donor.CEP,
		donor.AptoDoar,
		donor.ID,
	)
	if err = r.observe("donor_update", start, err); err != nil {
		return fmt.Errorf("failed to update donor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	return requireAffected(rows)
}

func (r *donorRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, `DELETE FROM doadores WHERE id_doador = $1`, id)
	if err = r.observe("donor_delete", start, err); err != nil {
		return fmt.Errorf("failed to delete donor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	return requireAffected(rows)
}
