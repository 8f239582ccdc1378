package types

import "strings"

// franchiseShortNames maps well-known franchise signatures to their canonical
// short forms. A franchise hit short-circuits all other shortening rules.
var franchiseShortNames = []struct {
	signature string
	short     string
}{
	{"스타벅스", "스타벅스"},
	{"맥도날드", "맥도날드"},
	{"버거킹", "버거킹"},
	{"이디야", "이디야"},
	{"투썸플레이스", "투썸"},
	{"파리바게뜨", "파바"},
	{"뚜레쥬르", "뚜레쥬르"},
}

// branchSuffixes are trailing tokens that mean "branch/location". A name
// ending in one loses that token entirely.
var branchSuffixes = []string{"호점", "역점", "점포", "매장", "지점", "DT점", "점"}

// menuTypeKeywords flag a word as a menu/food-type descriptor. When a long
// name contains one, only the leading business name survives.
var menuTypeKeywords = []string{
	"굴비", "갈비", "삼겹살", "치킨", "피자", "커피", "베이커리",
	"국수", "칼국수", "냉면", "곰탕", "설렁탕", "해물", "회",
}

// DeriveShortName derives a title-friendly short form of a business name.
// It is deterministic and only ever used as a default when a profile's
// short-name field is empty; callers may always override it.
func DeriveShortName(fullName string) string {
	name := strings.TrimSpace(fullName)

	for _, entry := range franchiseShortNames {
		if strings.Contains(name, entry.signature) {
			return entry.short
		}
	}

	name = stripParens(name)

	// "대종칼국수 일산점" → the whole trailing branch token goes.
	if words := strings.Fields(name); len(words) >= 2 {
		last := words[len(words)-1]
		for _, suffix := range branchSuffixes {
			if strings.HasSuffix(last, suffix) {
				name = strings.Join(words[:len(words)-1], " ")
				break
			}
		}
	}

	words := strings.Fields(name)
	if len(words) > 2 {
		candidate := strings.Join(words[:2], " ")
		for _, keyword := range menuTypeKeywords {
			if strings.Contains(candidate, keyword) {
				return words[0]
			}
		}
		return candidate
	}

	if len([]rune(name)) > 10 && len(words) > 0 {
		return words[0]
	}

	return name
}

// stripParens removes parenthesized segments, e.g. "한옥집 (본점)" → "한옥집".
func stripParens(name string) string {
	for {
		open := strings.Index(name, "(")
		if open < 0 {
			return strings.TrimSpace(name)
		}
		rest := name[open:]
		close := strings.Index(rest, ")")
		if close < 0 {
			return strings.TrimSpace(name[:open])
		}
		name = name[:open] + rest[close+1:]
	}
}
