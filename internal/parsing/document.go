// Package parsing turns a free-form business-info document into a
// BusinessProfile. The format is the one business owners actually hand
// over: **섹션** headers with plain lines underneath, menu lines with an
// optional trailing price.
package parsing

import (
	"regexp"
	"strings"

	"github.com/hyuklee/blogforge/internal/types"
)

var (
	sectionHeader = regexp.MustCompile(`^\*\*(.+?)\*\*$`)
	menuPrice     = regexp.MustCompile(`\d{1,3}(?:,\d{3})*원|\d+원`)
)

// Canonical section names. Aliases map onto these.
const (
	sectionName       = "업체명"
	sectionShortName  = "약칭"
	sectionKeywords   = "키워드"
	sectionAddress    = "주소"
	sectionHours      = "운영시간"
	sectionPhone      = "전화번호"
	sectionFeatures   = "특징"
	sectionMenu       = "메뉴"
	sectionOrdered    = "주문메뉴"
	sectionAtmosphere = "분위기"
	sectionTarget     = "타겟"
	sectionParking    = "주차"
)

var sectionAliases = map[string]string{
	"업체명":    sectionName,
	"상호":     sectionName,
	"약칭":     sectionShortName,
	"키워드":    sectionKeywords,
	"SEO키워드": sectionKeywords,
	"주소":     sectionAddress,
	"위치":     sectionAddress,
	"운영시간":   sectionHours,
	"영업시간":   sectionHours,
	"전화번호":   sectionPhone,
	"연락처":    sectionPhone,
	"특징":     sectionFeatures,
	"주요특징":   sectionFeatures,
	"메뉴":     sectionMenu,
	"전체메뉴":   sectionMenu,
	"주문메뉴":   sectionOrdered,
	"식사메뉴":   sectionOrdered,
	"분위기":    sectionAtmosphere,
	"타겟":     sectionTarget,
	"타겟고객":   sectionTarget,
	"주차":     sectionParking,
	"주차정보":   sectionParking,
}

// ParseProfile parses a business-info document. The business name and
// address sections are mandatory; a missing short name is derived from the
// name. Everything else the document omits stays empty, to be caught by
// profile validation at save time.
func ParseProfile(text string) (*types.BusinessProfile, error) {
	profile := &types.BusinessProfile{}
	section := ""

	for i, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			header := strings.ReplaceAll(strings.TrimSpace(match[1]), " ", "")
			canonical, known := sectionAliases[header]
			if !known {
				return nil, &ParseError{Line: i + 1, Message: "unknown section " + match[1]}
			}
			section = canonical
			continue
		}

		if section == "" {
			return nil, &ParseError{Line: i + 1, Message: "content before first **섹션** header"}
		}
		applyLine(profile, section, strings.TrimSpace(strings.TrimPrefix(line, "-")))
	}

	if profile.Name == "" {
		return nil, &ParseError{Line: 0, Message: "missing " + sectionName + " section"}
	}
	if profile.Address == "" {
		return nil, &ParseError{Line: 0, Message: "missing " + sectionAddress + " section"}
	}
	if profile.ShortName == "" {
		profile.ShortName = types.DeriveShortName(profile.Name)
	}
	return profile, nil
}

// applyLine folds one content line into the profile. Single-value sections
// keep their first line; multi-line prose sections join with a space.
func applyLine(profile *types.BusinessProfile, section, line string) {
	switch section {
	case sectionName:
		setOnce(&profile.Name, line)
	case sectionShortName:
		setOnce(&profile.ShortName, line)
	case sectionKeywords:
		profile.Keywords = append(profile.Keywords, line)
	case sectionAddress:
		setOnce(&profile.Address, line)
	case sectionHours:
		setOnce(&profile.Hours, line)
	case sectionPhone:
		setOnce(&profile.Phone, line)
	case sectionFeatures:
		profile.Features = append(profile.Features, line)
	case sectionMenu:
		profile.MenuItems = append(profile.MenuItems, parseMenuLine(line))
	case sectionOrdered:
		profile.OrderedItems = append(profile.OrderedItems, parseMenuLine(line))
	case sectionAtmosphere:
		appendProse(&profile.Atmosphere, line)
	case sectionTarget:
		appendProse(&profile.TargetCustomer, line)
	case sectionParking:
		appendProse(&profile.ParkingInfo, line)
	}
}

// parseMenuLine splits "이름: 가격" or "이름 9,000원" into a menu item. A line
// with no recognizable price is a price-less item.
func parseMenuLine(line string) types.MenuItem {
	if name, price, found := strings.Cut(line, ":"); found {
		return types.MenuItem{Name: strings.TrimSpace(name), Price: strings.TrimSpace(price)}
	}
	if loc := menuPrice.FindStringIndex(line); loc != nil {
		name := strings.TrimSpace(line[:loc[0]])
		price := line[loc[0]:loc[1]]
		if name != "" {
			return types.MenuItem{Name: name, Price: price}
		}
	}
	return types.MenuItem{Name: line}
}

func setOnce(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func appendProse(field *string, line string) {
	if *field == "" {
		*field = line
		return
	}
	*field += " " + line
}
