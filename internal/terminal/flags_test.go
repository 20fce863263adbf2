package terminal

import (
	"fmt"
	"testing"

	"github.com/articledesk/articles-cli/internal/utils/test/assert"
)

func TestOutputFormat(t *testing.T) {
	for _, tc := range []OutputFormat{
		// add all output formats here
		OutputFormatJSON,
		OutputFormatText,
	} {
		t.Run(fmt.Sprintf("%s should be valid", tc), func(t *testing.T) {
			assert.True(t, isValidOutputFormat(tc), "must be valid output format")
		})
	}

	t.Run("should have the correct type representation", func(t *testing.T) {
		assert.Equal(t, "OutputFormat", OutputFormatText.Type())
	})

	t.Run("should set its value correctly with a valid output format", func(t *testing.T) {
		var of OutputFormat

		assert.Nil(t, of.Set("json"))
		assert.Equal(t, "json", of.String())

		assert.Nil(t, of.Set(""))
		assert.Equal(t, "<blank>", of.String())
	})

	t.Run("should return an error when setting its value with an invalid output format", func(t *testing.T) {
		var of OutputFormat
		assert.Equal(t, "unsupported value, use one of [<blank>, json] instead", of.Set("eggcorn").Error())
	})
}
