package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

func TestParseField(t *testing.T) {
	for _, f := range domain.DraftFields {
		got, err := domain.ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestParseField_Rejected(t *testing.T) {
	for _, name := range []string{"", "colour", "PLATE_NUMBER", string(domain.FieldNetWeightKg)} {
		_, err := domain.ParseField(name)

		require.ErrorIs(t, err, domain.ErrValidation, "field %q", name)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, domain.Field(name), ve.Field)
	}
}

func TestDraftInput_SetGet(t *testing.T) {
	var in domain.DraftInput
	for i, f := range domain.DraftFields {
		require.True(t, in.Set(f, string(rune('a'+i))))
	}

	for i, f := range domain.DraftFields {
		assert.Equal(t, string(rune('a'+i)), in.Get(f), "field %s", f)
	}
	assert.Equal(t, domain.DraftInput{
		PlateNumber:   "a",
		WithLoadKg:    "b",
		WithoutLoadKg: "c",
		Date:          "d",
		Price:         "e",
		CheckNumber:   "f",
	}, in)
}

func TestDraftInput_NetWeightNotSettable(t *testing.T) {
	var in domain.DraftInput

	assert.False(t, in.Set(domain.FieldNetWeightKg, "1"))
	assert.Equal(t, domain.DraftInput{}, in)
	assert.Empty(t, in.Get(domain.FieldNetWeightKg))
}

func TestDraftView_Editing(t *testing.T) {
	id := uuid.New()

	assert.False(t, domain.DraftView{}.Editing())
	assert.True(t, domain.DraftView{EditingID: &id}.Editing())
}
