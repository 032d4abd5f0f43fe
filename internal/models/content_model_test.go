package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppDataCloneIsDeep(t *testing.T) {
	orig := AppData{
		Services: []Service{{ID: "1", Title: "S"}},
		Projects: []Project{{ID: "1", Images: []string{"a", "b"}}},
		Plans:    []Plan{{ID: "basic", Features: []string{"x"}}},
	}

	clone := orig.Clone()
	clone.Services[0].Title = "changed"
	clone.Projects[0].Images[0] = "changed"
	clone.Plans[0].Features[0] = "changed"

	assert.Equal(t, "S", orig.Services[0].Title)
	assert.Equal(t, "a", orig.Projects[0].Images[0])
	assert.Equal(t, "x", orig.Plans[0].Features[0])
}

func TestAppDataCloneNeverNullArrays(t *testing.T) {
	raw, err := json.Marshal(AppData{}.Clone())
	require.NoError(t, err)

	assert.JSONEq(t, `{"services":[],"projects":[],"plans":[],"testimonials":[],"inquiries":[]}`, string(raw))
}

func TestAppDataFeaturedProjects(t *testing.T) {
	doc := AppData{Projects: []Project{
		{ID: "1", Featured: true, Images: []string{"a"}},
		{ID: "2"},
		{ID: "3", Featured: true},
	}}

	featured := doc.FeaturedProjects()
	require.Len(t, featured, 2)
	assert.Equal(t, "1", featured[0].ID)
	assert.Equal(t, "3", featured[1].ID)

	featured[0].Images[0] = "changed"
	assert.Equal(t, "a", doc.Projects[0].Images[0])
	assert.NotNil(t, AppData{}.FeaturedProjects())
}

func TestProjectJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(Project{ID: "1", Title: "T", ImageURL: "u", ShopifyTheme: "Dawn"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"1","title":"T","description":"","imageUrl":"u","shopifyTheme":"Dawn"}`, string(raw))
}

func TestParseIconName(t *testing.T) {
	tests := []struct {
		in   string
		want IconName
	}{
		{"Palette", IconPalette},
		{"zap", IconZap},
		{" BRUSH ", IconBrush},
		{"", IconBox},
		{"Rocket", IconName("Rocket")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseIconName(tt.in), tt.in)
	}

	assert.True(t, IconLayout.Known())
	assert.False(t, IconName("Rocket").Known())
}
