package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Languages(t *testing.T) {
	tests := []struct {
		lang  string
		want  string
		fruit string
	}{
		{"en", "The list is already empty", "Apple"},
		{"en-US", "The list is already empty", "Apple"},
		{"zh", "列表已经是空的", "苹果"},
		{"zh-CN", "列表已经是空的", "苹果"},
		{"fr", "The list is already empty", "Apple"},
		{"", "The list is already empty", "Apple"},
		{"not a tag!", "The list is already empty", "Apple"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			tr, err := newTranslator(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.T("AlreadyEmpty"))
			assert.Equal(t, tt.fruit, tr.Fruits()[0])
		})
	}
}

func TestTranslator_TemplateData(t *testing.T) {
	tr, err := newTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "You double-clicked: Mango", tr.T("DoubleClicked", map[string]any{"Text": "Mango"}))
}

func TestTranslator_MissingMessageFallsBackToID(t *testing.T) {
	tr, err := newTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "NoSuchMessage", tr.T("NoSuchMessage"))
}

func TestLocales_HaveSameFruitCount(t *testing.T) {
	en, err := newTranslator("en")
	require.NoError(t, err)
	zh, err := newTranslator("zh")
	require.NoError(t, err)

	assert.Len(t, en.Fruits(), 20)
	assert.Len(t, zh.Fruits(), 20)
}
