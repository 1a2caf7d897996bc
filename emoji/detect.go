package emoji

// Returns whether the code point is commonly displayed as an emoji.
// This covers the pictographic blocks (which default to emoji presentation),
// skin tone modifiers, regional indicators and the symbols and dingbats
// that are usually rendered as emoji.
func IsEmoji(r rune) bool {
	return isPictographic(r) || isSymbolEmoji(r)
}

// Returns whether the rune is a skin tone modifier (U+1F3FB - U+1F3FF).
func IsModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// Returns whether the rune is a regional indicator. Pairs of regional
// indicators form flags.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols and pictographs
		return true
	case r >= 0x1FA00 && r <= 0x1FAFF: // symbols and pictographs extended
		return true
	case r >= 0x1F000 && r <= 0x1F02F: // mahjong
		return true
	case r >= 0x1F0A0 && r <= 0x1F0FF: // playing cards
		return true
	case r >= 0x1F170 && r <= 0x1F251: // enclosed alphanumerics and ideographs
		return true
	}
	return IsRegionalIndicator(r)
}

func isSymbolEmoji(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r >= 0x2B05 && r <= 0x2B07, r == 0x2B1B, r == 0x2B1C, r == 0x2B50, r == 0x2B55:
		return true
	case r >= 0x23E9 && r <= 0x23F3, r >= 0x23F8 && r <= 0x23FA:
		return true
	case r == 0x231A, r == 0x231B, r == 0x2328, r == 0x23CF:
		return true
	case r == 0x203C, r == 0x2049, r == 0x2122, r == 0x2139, r == 0x24C2:
		return true
	case r >= 0x2194 && r <= 0x2199, r == 0x21A9, r == 0x21AA:
		return true
	case r == 0x00A9, r == 0x00AE, r == 0x3030, r == 0x303D, r == 0x3297, r == 0x3299:
		return true
	}
	return false
}
