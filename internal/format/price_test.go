package format

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocale(t *testing.T) {
	setupConfig(t, "")
	require.Equal(t, language.MustParse("es-CL"), Locale())

	setupConfig(t, "locale=en-US")
	require.Equal(t, language.AmericanEnglish, Locale())

	setupConfig(t, "locale=not a locale!")
	require.Equal(t, language.MustParse("es-CL"), Locale())
}

func TestPrice(t *testing.T) {
	setupConfig(t, "")
	require.Equal(t, "$549.990", Price(549990))

	setupConfig(t, "locale=en-US")
	require.Equal(t, "$549,990", Price(549990))
}
