package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/carnicos-api/pkg/textutil"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "jamon serrano", textutil.Fold("Jamón Serrano"))
	assert.Equal(t, "nnn", textutil.Fold("ÑñN"))
	assert.Equal(t, "salchichon", textutil.Fold("SALCHICHÓN"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Jamón Serrano", "jamon"))
	assert.True(t, textutil.ContainsFold("chorizo picante", "PICANTE"))
	assert.True(t, textutil.ContainsFold("Lomo embuchado", ""), "needle vacío coincide con todo")
	assert.False(t, textutil.ContainsFold("Jamón", "queso"))
}
