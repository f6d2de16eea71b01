package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo reads column metadata of the gymcoach tables.
type SchemaRepo interface {
	GetColumns(ctx context.Context) ([]SchemaColumn, error)
}

type SchemaColumn struct {
	TableSchema  string
	TableName    string
	ColumnName   string
	DataType     string
	IsNullable   string
	ColumnDef    *string
	IsPrimaryKey bool
	// References is "table.column" for foreign keys.
	References *string
}

var gymcoachTables = []string{
	"app_user",
	"user_profile",
	"exercise",
	"plan",
	"plan_exercise",
	"training_session",
	"training_set",
	"body_measurement",
	"ai_call_log",
}

const columnsQuery = `
	WITH keys AS (
		SELECT k.table_name, k.column_name, tc.constraint_type,
			ccu.table_name || '.' || ccu.column_name AS target
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage k
			ON k.constraint_name = tc.constraint_name AND k.table_schema = tc.table_schema
		LEFT JOIN information_schema.constraint_column_usage ccu
			ON tc.constraint_type = 'FOREIGN KEY'
			AND ccu.constraint_name = tc.constraint_name AND ccu.table_schema = tc.table_schema
		WHERE tc.table_schema = 'public'
		  AND tc.constraint_type IN ('PRIMARY KEY', 'FOREIGN KEY')
	)
	SELECT c.table_schema, c.table_name, c.column_name, c.data_type, c.is_nullable, c.column_default,
		EXISTS (
			SELECT 1 FROM keys
			WHERE keys.table_name = c.table_name AND keys.column_name = c.column_name
			  AND keys.constraint_type = 'PRIMARY KEY'
		) AS is_pk,
		(
			SELECT MIN(keys.target) FROM keys
			WHERE keys.table_name = c.table_name AND keys.column_name = c.column_name
			  AND keys.constraint_type = 'FOREIGN KEY'
		) AS fk_target
	FROM information_schema.columns c
	WHERE c.table_schema = 'public'
	  AND c.table_name = ANY($1)
	ORDER BY c.table_name, c.ordinal_position`

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

func (r *poolSchemaRepo) GetColumns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := r.pool.Query(ctx, columnsQuery, gymcoachTables)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}
	defer rows.Close()

	cols := make([]SchemaColumn, 0, 64)
	for rows.Next() {
		var c SchemaColumn
		err := rows.Scan(
			&c.TableSchema, &c.TableName, &c.ColumnName, &c.DataType,
			&c.IsNullable, &c.ColumnDef, &c.IsPrimaryKey, &c.References,
		)
		if err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
