package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nino/pkg/nino"
	"github.com/dmitrymomot/nino/pkg/validator"
)

func TestValidNINO(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		valid := []string{
			"AA370773A",
			"AA370773",
			"aa 37 07 73 a",
			"AB123456 ",
			"OA370773D",
		}

		for _, v := range valid {
			err := validator.Apply(validator.ValidNINO("nino", v))
			assert.NoError(t, err, "NINO should be valid: %q", v)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"   ",
			"AA370773E",
			"ZZ370773A",
			"DS370773A",
			"AO370773A",
			"12345678",
			"AA37077",
		}

		for _, v := range invalid {
			err := validator.Apply(validator.ValidNINO("nino", v))
			assert.Error(t, err, "NINO should be invalid: %q", v)

			validationErr := validator.ExtractValidationErrors(err)
			require.NotNil(t, validationErr)
			assert.Equal(t, "validation.nino", validationErr[0].TranslationKey)
			assert.Equal(t, "nino", validationErr[0].Field)
		}
	})
}

func TestValidNINOStrict(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidNINOStrict("nino", "AA370773A")))
	assert.NoError(t, validator.Apply(validator.ValidNINOStrict("nino", "AA370773 ")))

	for _, v := range []string{"AA370773", "aa 37 07 73 a", "AA370773E", ""} {
		err := validator.Apply(validator.ValidNINOStrict("nino", v))
		require.Error(t, err, "NINO should fail strict validation: %q", v)

		validationErr := validator.ExtractValidationErrors(err)
		require.NotNil(t, validationErr)
		assert.Equal(t, "validation.nino_strict", validationErr[0].TranslationKey)
	}
}

func TestValidNINOField(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidNINOField("nino", nino.FromParts("AA370773", "A"))))
	assert.NoError(t, validator.Apply(validator.ValidNINOField("nino", nino.MustNew("AA370773"))))

	err := validator.Apply(validator.ValidNINOField("nino", nino.FromParts("12345678", "A")))
	require.Error(t, err)
	assert.True(t, validator.ExtractValidationErrors(err).Has("nino"))
}
