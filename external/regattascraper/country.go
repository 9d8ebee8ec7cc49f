package regattascraper

import (
	"regexp"
	"strings"
)

var sailPrefixRegex = regexp.MustCompile(`^[A-Za-z]+`)

const placeholderFlag = "🏳️"

// olympicToISO2 maps the national letters carried on sails (IOC three
// letter codes) to ISO 3166-1 alpha-2. Codes differ more often than not:
// GER is DE, NED is NL, SUI is CH.
var olympicToISO2 = map[string]string{
	"ARG": "AR",
	"AUS": "AU",
	"AUT": "AT",
	"BEL": "BE",
	"BER": "BM",
	"BRA": "BR",
	"BUL": "BG",
	"CAN": "CA",
	"CHI": "CL",
	"CHN": "CN",
	"CRO": "HR",
	"CYP": "CY",
	"CZE": "CZ",
	"DEN": "DK",
	"ESP": "ES",
	"EST": "EE",
	"FIN": "FI",
	"FRA": "FR",
	"GBR": "GB",
	"GER": "DE",
	"GRE": "GR",
	"HKG": "HK",
	"HUN": "HU",
	"INA": "ID",
	"IND": "IN",
	"IRL": "IE",
	"ISR": "IL",
	"ITA": "IT",
	"JPN": "JP",
	"KOR": "KR",
	"LAT": "LV",
	"LTU": "LT",
	"MAS": "MY",
	"MEX": "MX",
	"MLT": "MT",
	"MON": "MC",
	"NED": "NL",
	"NOR": "NO",
	"NZL": "NZ",
	"PHI": "PH",
	"POL": "PL",
	"POR": "PT",
	"PUR": "PR",
	"ROU": "RO",
	"RSA": "ZA",
	"SGP": "SG",
	"SLO": "SI",
	"SUI": "CH",
	"SVK": "SK",
	"SWE": "SE",
	"THA": "TH",
	"TPE": "TW",
	"TUR": "TR",
	"UAE": "AE",
	"UKR": "UA",
	"URU": "UY",
	"USA": "US",
	"VEN": "VE",
}

var flagByISO2 = map[string]string{
	"AE": "🇦🇪",
	"AR": "🇦🇷",
	"AT": "🇦🇹",
	"AU": "🇦🇺",
	"BE": "🇧🇪",
	"BG": "🇧🇬",
	"BM": "🇧🇲",
	"BR": "🇧🇷",
	"CA": "🇨🇦",
	"CH": "🇨🇭",
	"CL": "🇨🇱",
	"CN": "🇨🇳",
	"CY": "🇨🇾",
	"CZ": "🇨🇿",
	"DE": "🇩🇪",
	"DK": "🇩🇰",
	"EE": "🇪🇪",
	"ES": "🇪🇸",
	"FI": "🇫🇮",
	"FR": "🇫🇷",
	"GB": "🇬🇧",
	"GR": "🇬🇷",
	"HK": "🇭🇰",
	"HR": "🇭🇷",
	"HU": "🇭🇺",
	"ID": "🇮🇩",
	"IE": "🇮🇪",
	"IL": "🇮🇱",
	"IN": "🇮🇳",
	"IT": "🇮🇹",
	"JP": "🇯🇵",
	"KR": "🇰🇷",
	"LT": "🇱🇹",
	"LV": "🇱🇻",
	"MC": "🇲🇨",
	"MT": "🇲🇹",
	"MX": "🇲🇽",
	"MY": "🇲🇾",
	"NL": "🇳🇱",
	"NO": "🇳🇴",
	"NZ": "🇳🇿",
	"PH": "🇵🇭",
	"PL": "🇵🇱",
	"PR": "🇵🇷",
	"PT": "🇵🇹",
	"RO": "🇷🇴",
	"SE": "🇸🇪",
	"SG": "🇸🇬",
	"SI": "🇸🇮",
	"SK": "🇸🇰",
	"TH": "🇹🇭",
	"TR": "🇹🇷",
	"TW": "🇹🇼",
	"UA": "🇺🇦",
	"US": "🇺🇸",
	"UY": "🇺🇾",
	"VE": "🇻🇪",
	"ZA": "🇿🇦",
}

// CountryFromSail derives an ISO-2 country code and flag glyph from the
// national letters at the front of a sail number. Prefixes missing from
// the IOC table degrade to their first two characters, so "ZZZ 1" still
// yields a stable "ZZ" instead of failing the whole row.
func CountryFromSail(sail string) (string, string) {
	prefix := strings.ToUpper(sailPrefixRegex.FindString(strings.TrimSpace(sail)))
	if prefix == "" {
		return "", placeholderFlag
	}

	code, ok := olympicToISO2[prefix]
	if !ok {
		code = prefix
		if len(code) > 2 {
			code = code[:2]
		}
	}

	flag, ok := flagByISO2[code]
	if !ok {
		flag = placeholderFlag
	}
	return code, flag
}
