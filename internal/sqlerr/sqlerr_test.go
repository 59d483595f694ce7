package sqlerr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind/dataservice/internal/errs"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{sqlstate: "23505", want: UniqueViolation},
		{sqlstate: "23503", want: ForeignKeyViolation},
		{sqlstate: "23502", want: NotNullViolation},
		{sqlstate: "23514", want: CheckViolation},
		{sqlstate: "08006", want: ConnectionFailure},
		{sqlstate: "42P01", want: Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.sqlstate), "sqlstate %s", tt.sqlstate)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table   string
		errType Code
		want    string
	}{
		{table: "products", errType: UniqueViolation, want: "PRODUCT_ALREADY_EXISTS"},
		{table: "orders", errType: ForeignKeyViolation, want: "ORDER_NOT_FOUND"},
		{table: "products", errType: NotNullViolation, want: "PRODUCT_REQUIRED"},
		{table: "order_details", errType: CheckViolation, want: "ORDER_DETAIL_INVALID"},
		{table: "", errType: UniqueViolation, want: "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateErrorCode(tt.table, tt.errType))
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{constraint: "unique_categories_name", want: "name"},
		{constraint: "categories_category_name_key", want: "name"},
		{constraint: "categories_pkey", want: ""},
		{constraint: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint))
	}
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Resource not found", false, nil)

	handled := HandleError(original)

	assert.Same(t, original, handled)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		TableName:      "products",
		ColumnName:     "category_id",
		ConstraintName: "products_category_id_fkey",
	}

	handled := HandleError(pgerr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, handled, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Category does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "categories",
		ColumnName: "category_name",
	}

	handled := HandleError(pgerr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, handled, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CATEGORIE_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "category_name", httpErr.Errors[0].Field)
}

func TestHandleErrorNoRowsBecomesNotFound(t *testing.T) {
	handled := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, handled, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorUnknownBecomesInternal(t *testing.T) {
	handled := HandleError(errors.New("boom"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, handled, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "categories"}

	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "categories", converted.TableName)
	var pgerr *pgconn.PgError
	require.ErrorAs(t, converted, &pgerr)
	assert.Same(t, src, pgerr)
}
