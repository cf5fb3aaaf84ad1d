// Package store guarda a planilha carregada entre o upload e as
// interações seguintes do dashboard (seleção de colunas, gráficos).
package store

import (
	"context"
	"errors"

	"listinglab/internal/dataset"
)

var ErrNotFound = errors.New("dataset not found or expired")

type Store interface {
	Put(ctx context.Context, t *dataset.Table) (string, error)
	Get(ctx context.Context, id string) (*dataset.Table, error)
}
