package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/page-index-service/internal/model"
)

func TestValidateStruct_JSONFieldNames(t *testing.T) {
	ferrs, err := validateStruct(newValidator(), model.PageRequest{CurrentPage: 0, ItemsPerPage: 5})
	require.NoError(t, err)
	assert.Equal(t, []FieldError{{Field: "current_page", Message: "must be >= 1"}}, ferrs)
}

func TestValidateStruct_OtherTags(t *testing.T) {
	type tagged struct {
		Sort string `json:"sort,omitempty" validate:"oneof=asc desc"`
		Skip int    `json:"-" validate:"max=3"`
	}
	ferrs, err := validateStruct(newValidator(), tagged{Sort: "up", Skip: 4})
	require.NoError(t, err)
	require.Len(t, ferrs, 2)
	assert.Equal(t, FieldError{Field: "sort", Message: `failed "oneof" check`}, ferrs[0])
	assert.Equal(t, `failed "max" check`, ferrs[1].Message)
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	_, err := validateStruct(newValidator(), 42)
	assert.Error(t, err)
}
