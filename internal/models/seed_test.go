package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppDataShape(t *testing.T) {
	doc := DefaultAppData()

	assert.Len(t, doc.Services, 4)
	assert.Len(t, doc.Projects, 3)
	assert.Len(t, doc.Plans, 3)
	assert.Len(t, doc.Testimonials, 2)
	assert.NotNil(t, doc.Inquiries)
	assert.Empty(t, doc.Inquiries)

	assert.Equal(t, []string{"basic", "standard", "premium"}, []string{doc.Plans[0].ID, doc.Plans[1].ID, doc.Plans[2].ID})
	assert.Equal(t, "$199", doc.Plans[0].Price)
	assert.True(t, doc.Plans[1].Recommended)
	assert.Equal(t, IconPalette, doc.Services[0].Icon)

	for _, p := range doc.Projects {
		assert.True(t, p.Featured, p.ID)
		require.NotEmpty(t, p.Images, p.ID)
		assert.Equal(t, p.Images[0], p.ImageURL, p.ID)
	}
}

func TestDefaultAppDataIsFreshCopy(t *testing.T) {
	first := DefaultAppData()
	first.Services = first.Services[:1]
	first.Plans[0].Features[0] = "changed"
	first.Projects[0].Images[0] = "changed"

	second := DefaultAppData()
	assert.Len(t, second.Services, 4)
	assert.Equal(t, "Theme Installation", second.Plans[0].Features[0])
	assert.NotEqual(t, "changed", second.Projects[0].Images[0])
}

func TestParseSeed(t *testing.T) {
	doc, err := ParseSeed([]byte("services:\n  - id: a\n    title: A\n    icon: Zap\n"))
	require.NoError(t, err)

	assert.Equal(t, []Service{{ID: "a", Title: "A", Icon: IconZap}}, doc.Services)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Inquiries)

	_, err = ParseSeed([]byte("services: [unterminated"))
	assert.Error(t, err)
}
