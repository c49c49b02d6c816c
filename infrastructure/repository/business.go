package repository

import (
	"context"
	"database/sql"
	"slices"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	businessesTable = "businesses b"
	businessColumns = "b.id, b.name, b.owner_id, b.source_connections, b.version, b.created_at, b.updated_at"
)

type BusinessRepository interface {
	GetBusinessByID(ctx context.Context, id string) (*domain.Business, error)
	ListBusinessesWithActiveConnection(ctx context.Context, source domain.Source) ([]*domain.Business, error)
	UpdateConnections(ctx context.Context, business *domain.Business) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

// GetBusinessByID retorna nil, nil quando o negócio não existe
func (r *businessRepository) GetBusinessByID(ctx context.Context, id string) (*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(squirrel.Eq{"b.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	business, err := scanBusiness(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar negócio %s", id)
	}

	return business, nil
}

func (r *businessRepository) ListBusinessesWithActiveConnection(ctx context.Context, source domain.Source) ([]*domain.Business, error) {
	filter, err := json.Marshal([]map[string]any{{"source": source, "isActive": true}})
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(squirrel.Expr("b.source_connections @> ?::jsonb", string(filter))).
		OrderBy("b.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear negócio")
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return businesses, nil
}

// UpdateConnections grava as conexões somente se a versão lida ainda for a atual.
// Em caso de sucesso business.Version é incrementado; se outra escrita venceu, retorna domain.ErrVersionConflict.
func (r *businessRepository) UpdateConnections(ctx context.Context, business *domain.Business) error {
	connectionsJSON, err := json.Marshal(business.SourceConnections)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar conexões para JSON")
	}

	query, args, err := squirrel.
		Update("businesses").
		Set("source_connections", string(connectionsJSON)).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": business.ID, "version": business.Version}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&business.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVersionConflict
		}
		return errors.Wrapf(err, "erro ao atualizar conexões do negócio %s", business.ID)
	}

	business.Version++
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (*domain.Business, error) {
	var (
		business        domain.Business
		ownerID         string
		connectionsJSON []byte
	)

	if err := row.Scan(
		&business.ID,
		&business.Name,
		&ownerID,
		&connectionsJSON,
		&business.Version,
		&business.CreatedAt,
		&business.UpdatedAt,
	); err != nil {
		return nil, err
	}

	business.OwnerID = domain.UserID(ownerID)

	if len(connectionsJSON) > 0 {
		if err := json.Unmarshal(connectionsJSON, &business.SourceConnections); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar conexões")
		}
		business.SourceConnections = slices.DeleteFunc(business.SourceConnections, func(c *domain.Connection) bool {
			return c == nil
		})
	}

	return &business, nil
}
