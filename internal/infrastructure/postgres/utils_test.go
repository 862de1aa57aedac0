package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	cases := map[string]string{
		"Chá Verde":   "cha verde",
		"FEIJÃO":      "feijao",
		"Açúcar":      "acucar",
		"sin acentos": "sin acentos",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, foldText(in), "foldText(%q)", in)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otra cosa")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(errors.New("otra cosa")))
}
