package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MenuItem is a single menu entry. Price is free-form text (e.g. "9,000원")
// and may be empty.
type MenuItem struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price,omitempty"`
}

// String renders the item the way prompts and presets display it.
func (m MenuItem) String() string {
	if m.Price != "" {
		return fmt.Sprintf("%s (%s)", m.Name, m.Price)
	}
	return m.Name
}

// BusinessProfile describes the business a post is ghost-written for.
// Profiles are treated as immutable once constructed; per-item keyword
// overrides go through WithKeywords rather than mutation.
type BusinessProfile struct {
	Name           string     `json:"name" validate:"required"`
	ShortName      string     `json:"short_name,omitempty"` // title-friendly short form, derived when empty
	Keywords       []string   `json:"seo_keywords,omitempty"` // first entry is the primary SEO keyword
	Address        string     `json:"address" validate:"required"`
	Hours          string     `json:"hours,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Features       []string   `json:"features,omitempty"` // entries may carry the RequiredFeatureTag prefix
	MenuItems      []MenuItem `json:"menu_items,omitempty"`
	OrderedItems   []MenuItem `json:"ordered_items" validate:"required,min=1,dive"`
	Atmosphere     string     `json:"atmosphere,omitempty"`
	TargetCustomer string     `json:"target_customer,omitempty"`
	ParkingInfo    string     `json:"parking_info,omitempty"`
}

var validate = validator.New()

// Validate checks the profile invariants before any generation call is made.
// Struct tags cover per-field rules; the menu-or-features rule is cross-field.
func (p *BusinessProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if len(p.MenuItems) == 0 && len(p.Features) == 0 {
		return fmt.Errorf("business profile %q needs at least one menu item or feature", p.Name)
	}
	return nil
}

// WithKeywords returns a copy of the profile with only the keyword list
// replaced. Every field is copied explicitly so the field set stays
// statically checked; slices are duplicated so the copy shares nothing
// mutable with the original.
func (p *BusinessProfile) WithKeywords(keywords ...string) *BusinessProfile {
	clone := BusinessProfile{
		Name:           p.Name,
		ShortName:      p.ShortName,
		Keywords:       append([]string(nil), keywords...),
		Address:        p.Address,
		Hours:          p.Hours,
		Phone:          p.Phone,
		Features:       append([]string(nil), p.Features...),
		MenuItems:      append([]MenuItem(nil), p.MenuItems...),
		OrderedItems:   append([]MenuItem(nil), p.OrderedItems...),
		Atmosphere:     p.Atmosphere,
		TargetCustomer: p.TargetCustomer,
		ParkingInfo:    p.ParkingInfo,
	}
	return &clone
}

// TitleName returns the name used in titles: the short name when present,
// otherwise the full name.
func (p *BusinessProfile) TitleName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.Name
}

// locationTable maps address substrings to the canonical location name used in
// prompts. Checked in order before the generic fallback.
var locationTable = []struct {
	substr   string
	location string
}{
	{"일산", "일산"},
	{"강남", "강남"},
	{"목포", "목포"},
}

// LocationName extracts the short region name from the address, e.g.
// "경기 고양시 일산동구" → "일산". Unknown addresses fall back to the second
// address token with 시/구 suffixes stripped.
func (p *BusinessProfile) LocationName() string {
	for _, entry := range locationTable {
		if strings.Contains(p.Address, entry.substr) {
			return entry.location
		}
	}
	parts := strings.Fields(p.Address)
	if len(parts) >= 2 {
		loc := strings.ReplaceAll(parts[1], "시", "")
		return strings.ReplaceAll(loc, "구", "")
	}
	return ""
}
