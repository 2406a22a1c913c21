package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The legacy store carries booking statuses as free Vietnamese text, with
// and without diacritics. Normalization happens here, at the data boundary,
// so nothing above the repositories ever matches status strings.

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldStatusText(raw string) string {
	folded, _, err := transform.String(diacriticFold, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(folded)
	// đ carries no combining mark, NFD leaves it intact
	folded = strings.ReplaceAll(folded, "đ", "d")
	return strings.Join(strings.Fields(folded), " ")
}

// Bounded phrase table for legacy status text. Whole-phrase membership only:
// matching substrings would misread unrelated words as cancellations.
var legacyStatusText = map[string]BookingStatus{
	"chua check-in": StatusPendingCheckin,
	"chua checkin":  StatusPendingCheckin,
	"da check-in":   StatusCheckedIn,
	"da checkin":    StatusCheckedIn,
	"da tra phong":  StatusCheckedOut,
	"tra phong":     StatusCheckedOut,
	"checked out":   StatusCheckedOut,
	"da huy":        StatusCancelled,
	"huy":           StatusCancelled,
	"khong den":     StatusNoShow,
	"no show":       StatusNoShow,
}

// Longest phrases first, so "da tra phong" wins over "tra phong" and
// "da huy" over "huy" when scanning embedded phrases.
var legacyStatusOrder = []string{
	"chua check-in", "chua checkin",
	"da check-in", "da checkin",
	"da tra phong", "tra phong", "checked out",
	"da huy", "khong den", "no show", "huy",
}

// ParseBookingStatus maps stored status text, canonical or legacy, onto the
// closed enumeration. Unknown text is treated as pending-checkin: a status
// we cannot read must never free a space.
func ParseBookingStatus(raw string) BookingStatus {
	folded := foldStatusText(raw)
	switch BookingStatus(folded) {
	case StatusPendingCheckin, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return BookingStatus(folded)
	}
	if st, ok := legacyStatusText[folded]; ok {
		return st
	}
	// Legacy rows sometimes carry trailing free text ("Đã hủy bởi khách").
	// Scan for known phrases on whole-token boundaries only.
	tokens := strings.Fields(folded)
	for _, phrase := range legacyStatusOrder {
		if containsPhrase(tokens, strings.Fields(phrase)) {
			return legacyStatusText[phrase]
		}
	}
	return StatusPendingCheckin
}

func containsPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(tokens) < len(phrase) {
		return false
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j := range phrase {
			if tokens[i+j] != phrase[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
