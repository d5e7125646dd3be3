package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cppgen-labs/cppgen/internal/banner"
	"github.com/cppgen-labs/cppgen/internal/copyright"
	"github.com/cppgen-labs/cppgen/internal/profile"
	"github.com/spf13/viper"
)

// minBannerWidth keeps at least the marker and a one-letter token on a line.
const minBannerWidth = 10

// Settings is the resolved configuration for one command invocation.
type Settings struct {
	Author      string
	Company     string
	BannerWidth int
	FillOrder   banner.FillOrder
	Now         time.Time
}

// Attribution returns the author, company, and date for copyright blocks.
func (s Settings) Attribution() copyright.Attribution {
	return copyright.Attribution{Author: s.Author, Company: s.Company, Date: s.Now}
}

// Builder returns a class block builder using the banner settings.
func (s Settings) Builder() *banner.Builder {
	return banner.NewBuilder(banner.WithWidth(s.BannerWidth), banner.WithFillOrder(s.FillOrder))
}

// Current resolves settings from the global Viper instance loaded by Load.
func Current(p *profile.Profile, now time.Time) (Settings, error) {
	return Resolve(viper.GetViper(), p, now)
}

// Resolve merges p over v over the defaults. p may be nil.
func Resolve(v *viper.Viper, p *profile.Profile, now time.Time) (Settings, error) {
	s := Settings{
		Author:      copyright.DefaultAuthor,
		Company:     copyright.DefaultCompany,
		BannerWidth: banner.DefaultWidth,
		FillOrder:   banner.RightFirst,
		Now:         now,
	}

	author := strings.TrimSpace(v.GetString(KeyAuthorName))
	company := strings.TrimSpace(v.GetString(KeyCompanyName))
	width := strings.TrimSpace(v.GetString(KeyBannerWidth))
	order := strings.TrimSpace(v.GetString(KeyFillOrder))

	if p != nil {
		if p.AuthorName != "" {
			author = p.AuthorName
		}
		if p.CompanyName != "" {
			company = p.CompanyName
		}
		if p.BannerWidth != 0 {
			width = strconv.Itoa(p.BannerWidth)
		}
		if p.FillOrder != "" {
			order = p.FillOrder
		}
	}

	if author != "" {
		s.Author = author
	}
	if company != "" {
		s.Company = company
	}
	if width != "" {
		n, err := strconv.Atoi(width)
		if err != nil {
			return Settings{}, fmt.Errorf("%s %q is not a number", KeyBannerWidth, width)
		}
		if n < minBannerWidth {
			return Settings{}, fmt.Errorf("%s must be at least %d, got %d", KeyBannerWidth, minBannerWidth, n)
		}
		s.BannerWidth = n
	}
	if order != "" {
		fo, ok := banner.ParseFillOrder(order)
		if !ok {
			return Settings{}, fmt.Errorf("%s must be right-first or left-first, got %q", KeyFillOrder, order)
		}
		s.FillOrder = fo
	}
	return s, nil
}
