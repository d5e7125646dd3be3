package config

import (
	"testing"
	"time"

	"github.com/cppgen-labs/cppgen/internal/banner"
	"github.com/cppgen-labs/cppgen/internal/profile"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)

func TestResolveDefaults(t *testing.T) {
	s, err := Resolve(viper.New(), nil, now)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Author", s.Author)
	assert.Equal(t, "Unknown Company", s.Company)
	assert.Equal(t, banner.DefaultWidth, s.BannerWidth)
	assert.Equal(t, banner.RightFirst, s.FillOrder)
	assert.Equal(t, "Written by Unknown Author, October 2025", s.Attribution().WrittenBy())
}

func TestResolveUserConfig(t *testing.T) {
	v := viper.New()
	v.Set(KeyAuthorName, "Ada")
	v.Set(KeyCompanyName, "Engines")
	v.Set(KeyBannerWidth, "60")
	v.Set(KeyFillOrder, "left-first")

	s, err := Resolve(v, nil, now)
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Author)
	assert.Equal(t, "Engines", s.Company)
	assert.Equal(t, 60, s.BannerWidth)
	assert.Equal(t, banner.LeftFirst, s.FillOrder)
	assert.Equal(t, 60, s.Builder().Width())
}

func TestResolveProfileWins(t *testing.T) {
	v := viper.New()
	v.Set(KeyAuthorName, "Ada")
	v.Set(KeyBannerWidth, 60)

	p := &profile.Profile{CompanyName: "Project Co", BannerWidth: 80}
	s, err := Resolve(v, p, now)
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Author)
	assert.Equal(t, "Project Co", s.Company)
	assert.Equal(t, 80, s.BannerWidth)
}

func TestResolveRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyBannerWidth, "wide"},
		{KeyBannerWidth, "5"},
		{KeyFillOrder, "sideways"},
	}
	for _, tt := range tests {
		v := viper.New()
		v.Set(tt.key, tt.value)
		_, err := Resolve(v, nil, now)
		assert.Error(t, err, "%s=%s", tt.key, tt.value)
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	t.Setenv("CPPGEN_HOME", t.TempDir())
	assert.Error(t, Set("colour", "blue"))
}

func TestSetAndGet(t *testing.T) {
	t.Setenv("CPPGEN_HOME", t.TempDir())
	t.Cleanup(viper.Reset)

	Load()
	require.NoError(t, Set(KeyAuthorName, "Ada"))
	assert.Equal(t, "Ada", Get(KeyAuthorName))
	assert.FileExists(t, FilePath())
}
