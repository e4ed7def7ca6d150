package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, debug), buf
}

func sqlAndRows() (string, int64) {
	return "SELECT * FROM products", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{
			name:  "failure is reported",
			begin: time.Now(),
			err:   errors.New("connection reset"),
			want:  "GORM query failed",
		},
		{
			name:  "record not found is ignored",
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
		},
		{
			name:  "slow statement is reported",
			begin: time.Now().Add(-time.Second),
			want:  "GORM slow query",
		},
		{
			name:    "fast statement is silent outside debug",
			begin:   time.Now(),
			wantNot: "GORM query",
		},
		{
			name:  "fast statement is logged in debug",
			debug: true,
			begin: time.Now(),
			want:  "SELECT * FROM products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLogger(tt.debug)

			gormLogger.Trace(context.Background(), tt.begin, sqlAndRows, tt.err)

			switch {
			case tt.want != "":
				assert.Contains(t, buf.String(), tt.want)
			case tt.wantNot != "":
				assert.NotContains(t, buf.String(), tt.wantNot)
			default:
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	gormLogger.LogMode(logger.Silent).Error(context.Background(), "dropped %d", 1)
	assert.Empty(t, buf.String())

	gormLogger.Error(context.Background(), "kept %d", 2)
	assert.Contains(t, buf.String(), "kept 2")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	gormLogger, base := newBufferedGormLogger(false)

	scoped := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(scoped, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	gormLogger.Trace(ctx, time.Now(), sqlAndRows, errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
	assert.Contains(t, scoped.String(), "table=products")
	assert.Contains(t, scoped.String(), "statement=SELECT")
}

func TestDescribeStatement(t *testing.T) {
	tests := []struct {
		sql           string
		wantStatement string
		wantTable     string
	}{
		{sql: `SELECT * FROM "products" WHERE id = $1`, wantStatement: "SELECT", wantTable: "products"},
		{sql: "select count(*) from `variant_features` where product_id = ?", wantStatement: "SELECT", wantTable: "variant_features"},
		{sql: `INSERT INTO "product_variants" ("id","product_id") VALUES ($1,$2)`, wantStatement: "INSERT", wantTable: "product_variants"},
		{sql: `UPDATE "products" SET "version"=$1 WHERE id = $2 AND version = $3`, wantStatement: "UPDATE", wantTable: "products"},
		{sql: `DELETE FROM "variant_features" WHERE product_id = $1`, wantStatement: "DELETE", wantTable: "variant_features"},
		{sql: "BEGIN", wantStatement: "BEGIN"},
		{sql: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			statement, table := describeStatement(tt.sql)

			assert.Equal(t, tt.wantStatement, statement)
			assert.Equal(t, tt.wantTable, table)
		})
	}
}
